package service

import (
	"context"

	"github.com/avdorokhov/devops-demo/internal/clock"
	"github.com/avdorokhov/devops-demo/internal/config"
	"github.com/avdorokhov/devops-demo/internal/logger"
	"github.com/avdorokhov/devops-demo/models"
)

type statusService struct {
	settings config.Settings
	clock    clock.Clock

	logger *logger.Logger
}

func NewStatusService(settings config.Settings, clk clock.Clock, logger *logger.Logger) StatusService {
	return &statusService{
		settings: settings,
		clock:    clk,
		logger:   logger,
	}
}

// GetStatus builds the health snapshot from the resolved settings. Missing
// settings keys degrade to safe fallbacks instead of failing.
func (s *statusService) GetStatus(ctx context.Context) models.Status {
	return models.Status{
		Status:      models.StatusHealthy,
		Version:     s.settings.Version(),
		Timestamp:   clock.Timestamp(s.clock),
		Environment: s.settings.Environment(),
	}
}
