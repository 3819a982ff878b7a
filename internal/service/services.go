package service

import (
	"github.com/avdorokhov/devops-demo/internal/clock"
	"github.com/avdorokhov/devops-demo/internal/config"
	"github.com/avdorokhov/devops-demo/internal/logger"
)

// Services aggregates all application services behind their interfaces.
type Services struct {
	StatusService     StatusService
	ProcessingService ProcessingService
}

func NewServices(settings config.Settings, clk clock.Clock, logger *logger.Logger) *Services {
	return &Services{
		StatusService:     NewStatusService(settings, clk, logger),
		ProcessingService: NewProcessingService(settings.Version(), clk, logger),
	}
}
