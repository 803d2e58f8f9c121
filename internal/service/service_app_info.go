package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService reports the running build. Binaries built without
// ldflags report "N/A".
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	logger.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("serving build")

	return &appInfoService{
		buildInfo: buildInfo,
		startedAt: time.Now(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) Uptime(ctx context.Context) time.Duration {
	return s.now().Sub(s.startedAt)
}
