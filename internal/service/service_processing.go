package service

import (
	"context"

	"github.com/avdorokhov/devops-demo/internal/clock"
	"github.com/avdorokhov/devops-demo/internal/logger"
	"github.com/avdorokhov/devops-demo/models"
)

type processingService struct {
	version string
	clock   clock.Clock

	logger *logger.Logger
}

func NewProcessingService(version string, clk clock.Clock, logger *logger.Logger) ProcessingService {
	return &processingService{
		version: version,
		clock:   clk,
		logger:  logger,
	}
}

// Process wraps data with a processing timestamp, the processed status tag,
// and the application version. The payload is carried through verbatim.
func (s *processingService) Process(ctx context.Context, data map[string]any) models.ProcessedRecord {
	s.logger.Info().Msg("processing data...")

	return models.ProcessedRecord{
		OriginalData: data,
		ProcessedAt:  clock.Timestamp(s.clock),
		Status:       models.StatusProcessed,
		Version:      s.version,
	}
}
