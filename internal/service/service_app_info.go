package service

import (
	"context"

	"github.com/mkhalidov/go-identity-service/internal/config"
)

// AppInfoService exposes build/runtime metadata about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	if s.version == "" {
		return "N/A"
	}

	return s.version
}
