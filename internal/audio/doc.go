// Package audio decodes PCM WAV recordings submitted by contributors and
// normalizes them to the canonical capture format: 44,100 Hz sample rate,
// 16-bit samples, single channel.
package audio
