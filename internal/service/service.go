package service

import (
	"vaani_web/internal/logging"
	"vaani_web/internal/metrics"
	"vaani_web/internal/repository"
	"vaani_web/internal/uploader"
)

type Services struct {
	User      *UserService
	Recording *RecordingService
}

func NewServices(repos *repository.Repositories, up uploader.Uploader, stagingDir string,
	policy PasswordPolicy, logger logging.Logger, m *metrics.Metrics) *Services {

	return &Services{
		User:      NewUserService(repos.User, policy, m),
		Recording: NewRecordingService(up, stagingDir, logger, m),
	}
}
