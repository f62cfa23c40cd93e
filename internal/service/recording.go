package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vaani_web/internal/audio"
	"vaani_web/internal/common"
	"vaani_web/internal/logging"
	"vaani_web/internal/metrics"
	"vaani_web/internal/uploader"
)

// Language tags used in staged and remote file names.
const (
	langEnglish = "ENG"
	langHindi   = "HIND"
)

// Submission is one contributor recording of a prompt: both language tracks
// arrive together in a single request.
type Submission struct {
	Username string
	PromptID string
	English  []byte
	Hindi    []byte
}

// SubmissionResult holds the opaque remote identifiers of the two uploaded
// tracks.
type SubmissionResult struct {
	EnglishRemoteID string
	HindiRemoteID   string
}

// RecordingService runs the submission pipeline: validate, normalize each
// track, stage it locally, upload it, and always remove the staged file.
type RecordingService struct {
	uploader   uploader.Uploader
	stagingDir string
	logger     logging.Logger
	metrics    *metrics.Metrics

	// Swappable for tests.
	now   func() time.Time
	newID func() string
}

func NewRecordingService(up uploader.Uploader, stagingDir string, logger logging.Logger, m *metrics.Metrics) *RecordingService {
	return &RecordingService{
		uploader:   up,
		stagingDir: stagingDir,
		logger:     logger,
		metrics:    m,
		now:        time.Now,
		newID:      common.NewShortID,
	}
}

// Submit processes both tracks sequentially, English first. Validation runs
// before any file or network I/O. A normalization failure aborts the whole
// submission; an upload failure is reported truthfully. Staged files are
// deleted on every exit path.
func (s *RecordingService) Submit(ctx context.Context, sub Submission) (*SubmissionResult, error) {
	if sub.Username == "" || sub.PromptID == "" || len(sub.English) == 0 || len(sub.Hindi) == 0 {
		s.metrics.SubmissionFailures.WithLabelValues("missing_input").Inc()
		return nil, common.ErrMissingInput
	}

	// One short ID per submission; both tracks share it, so same-second
	// repeats by the same user cannot collide.
	submissionID := s.newID()
	ts := s.now()

	engID, err := s.processTrack(ctx, sub.Username, langEnglish, sub.PromptID, submissionID, ts, sub.English)
	if err != nil {
		return nil, err
	}

	hinID, err := s.processTrack(ctx, sub.Username, langHindi, sub.PromptID, submissionID, ts, sub.Hindi)
	if err != nil {
		return nil, err
	}

	s.metrics.SubmissionsTotal.Inc()
	s.logger.Info(ctx, "submission stored",
		"username", sub.Username, "prompt_id", sub.PromptID,
		"english_id", engID, "hindi_id", hinID)

	return &SubmissionResult{EnglishRemoteID: engID, HindiRemoteID: hinID}, nil
}

func (s *RecordingService) processTrack(ctx context.Context, username, lang, promptID, submissionID string, ts time.Time, data []byte) (string, error) {
	start := time.Now()
	normalized, err := audio.Normalize(data)
	s.metrics.NormalizeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.SubmissionFailures.WithLabelValues("normalize").Inc()
		return "", fmt.Errorf("%w (%s): %v", common.ErrAudioProcessing, lang, err)
	}

	name := fmt.Sprintf("%s_%s_%s_%s_%s.wav",
		submissionID, username, lang, promptID, ts.Format("20060102_150405"))
	staged := filepath.Join(s.stagingDir, name)

	if err := os.WriteFile(staged, normalized, 0o644); err != nil {
		s.metrics.SubmissionFailures.WithLabelValues("staging").Inc()
		return "", fmt.Errorf("failed to stage %s: %w", name, err)
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			s.metrics.StagedCleanupFailures.Inc()
			s.logger.Warn(ctx, "failed to remove staged file", "path", staged, "error", err)
		}
	}()

	f, err := os.Open(staged)
	if err != nil {
		s.metrics.SubmissionFailures.WithLabelValues("staging").Inc()
		return "", fmt.Errorf("failed to reopen staged file %s: %w", name, err)
	}
	defer f.Close()

	uploadStart := time.Now()
	remoteID, err := s.uploader.Upload(ctx, name, f)
	s.metrics.UploadDuration.Observe(time.Since(uploadStart).Seconds())
	if err != nil {
		s.metrics.UploadFailures.Inc()
		s.metrics.SubmissionFailures.WithLabelValues("upload").Inc()
		return "", fmt.Errorf("%w (%s): %v", common.ErrUploadFailed, lang, err)
	}

	s.metrics.UploadsTotal.Inc()
	return remoteID, nil
}
