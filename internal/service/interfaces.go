package service

import (
	"context"

	"github.com/avdorokhov/devops-demo/models"
)

// StatusService reports the application health snapshot built from the
// resolved settings.
type StatusService interface {
	GetStatus(ctx context.Context) models.Status
}

// ProcessingService wraps arbitrary payloads with processing metadata.
type ProcessingService interface {
	Process(ctx context.Context, data map[string]any) models.ProcessedRecord
}
