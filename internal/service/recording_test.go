package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaani_web/internal/audio"
	"vaani_web/internal/common"
	"vaani_web/internal/logging"
	"vaani_web/internal/metrics"
)

// fakeUploader records uploads and can be told to fail from a given call on.
type fakeUploader struct {
	names     []string
	failAfter int // fail calls with index >= failAfter; -1 never fails
}

func (f *fakeUploader) Upload(_ context.Context, name string, body io.Reader) (string, error) {
	if f.failAfter >= 0 && len(f.names) >= f.failAfter {
		return "", fmt.Errorf("remote storage unreachable")
	}
	if _, err := io.ReadAll(body); err != nil {
		return "", err
	}
	f.names = append(f.names, name)
	return "remote/" + name, nil
}

func testWAV(t *testing.T) []byte {
	t.Helper()
	samples := make([]int16, 1600)
	for i := range samples {
		samples[i] = int16(12000 * math.Sin(2*math.Pi*440*float64(i)/16000))
	}
	data, err := audio.EncodeWAV(samples, 16000)
	require.NoError(t, err)
	return data
}

func newRecordingService(t *testing.T, failAfter int) (*RecordingService, *fakeUploader, string) {
	t.Helper()
	dir := t.TempDir()
	up := &fakeUploader{failAfter: failAfter}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := metrics.NewMetrics(prometheus.NewRegistry())
	svc := NewRecordingService(up, dir, logger, m)
	return svc, up, dir
}

func stagingEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func validSubmission(t *testing.T) Submission {
	return Submission{
		Username: "alice",
		PromptID: "42",
		English:  testWAV(t),
		Hindi:    testWAV(t),
	}
}

func TestSubmit(t *testing.T) {
	svc, up, dir := newRecordingService(t, -1)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) }
	svc.newID = func() string { return "Zx9Qa1" }

	res, err := svc.Submit(context.Background(), validSubmission(t))
	require.NoError(t, err)

	assert.Equal(t, "remote/Zx9Qa1_alice_ENG_42_20260901_103000.wav", res.EnglishRemoteID)
	assert.Equal(t, "remote/Zx9Qa1_alice_HIND_42_20260901_103000.wav", res.HindiRemoteID)
	assert.Len(t, up.names, 2)
	assert.Empty(t, stagingEntries(t, dir), "staging dir must be empty after a successful submission")
}

func TestSubmitMissingInput(t *testing.T) {
	svc, up, dir := newRecordingService(t, -1)

	cases := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"no username", func(s *Submission) { s.Username = "" }},
		{"no prompt id", func(s *Submission) { s.PromptID = "" }},
		{"no english audio", func(s *Submission) { s.English = nil }},
		{"no hindi audio", func(s *Submission) { s.Hindi = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission(t)
			tc.mutate(&sub)

			_, err := svc.Submit(context.Background(), sub)
			assert.ErrorIs(t, err, common.ErrMissingInput)
			assert.Empty(t, up.names, "no upload may happen for invalid input")
			assert.Empty(t, stagingEntries(t, dir), "no file may be written for invalid input")
		})
	}
}

func TestSubmitNormalizeFailure(t *testing.T) {
	svc, up, dir := newRecordingService(t, -1)

	sub := validSubmission(t)
	sub.English = []byte("not audio at all")

	_, err := svc.Submit(context.Background(), sub)
	assert.ErrorIs(t, err, common.ErrAudioProcessing)
	assert.Empty(t, up.names, "upload must not be attempted after a normalize failure")
	assert.Empty(t, stagingEntries(t, dir))
}

func TestSubmitUploadFailureCleansStaging(t *testing.T) {
	svc, _, dir := newRecordingService(t, 0)

	_, err := svc.Submit(context.Background(), validSubmission(t))
	assert.ErrorIs(t, err, common.ErrUploadFailed)
	assert.Empty(t, stagingEntries(t, dir), "staged file must be deleted even when the upload fails")
}

func TestSubmitSecondTrackUploadFailure(t *testing.T) {
	svc, up, dir := newRecordingService(t, 1)

	_, err := svc.Submit(context.Background(), validSubmission(t))
	assert.ErrorIs(t, err, common.ErrUploadFailed)
	assert.Len(t, up.names, 1, "the English track uploads before the Hindi failure")
	assert.Empty(t, stagingEntries(t, dir))
}

func TestSubmitUploadsAreNormalized(t *testing.T) {
	dir := t.TempDir()
	var uploaded [][]byte
	up := &captureUploader{payloads: &uploaded}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := NewRecordingService(up, dir, logger, metrics.NewMetrics(prometheus.NewRegistry()))

	_, err := svc.Submit(context.Background(), validSubmission(t))
	require.NoError(t, err)
	require.Len(t, uploaded, 2)

	for _, payload := range uploaded {
		pcm, err := audio.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, audio.CanonicalSampleRate, pcm.SampleRate)
		assert.Equal(t, audio.CanonicalChannels, pcm.Channels)
		assert.Equal(t, audio.CanonicalBitDepth, pcm.BitDepth)
	}
}

type captureUploader struct {
	payloads *[][]byte
}

func (c *captureUploader) Upload(_ context.Context, name string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	*c.payloads = append(*c.payloads, data)
	return name, nil
}
