// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Dorokhov

package models

// Well-known status tags emitted by the demo services.
const (
	// StatusHealthy is reported by the status endpoint when the
	// application is up and serving.
	StatusHealthy = "healthy"

	// StatusProcessed marks a payload that went through the processing
	// service.
	StatusProcessed = "processed"
)

// Status is a point-in-time health snapshot of the running application.
// It is returned by the /api/status/ endpoint and printed at startup by
// the file-variant application.
type Status struct {
	// Status is the health tag, normally [StatusHealthy].
	Status string `json:"status"`

	// Version is the application version taken from the resolved settings.
	Version string `json:"version"`

	// Timestamp is the local ISO-8601 time at which the snapshot was taken.
	Timestamp string `json:"timestamp"`

	// Environment is the deployment stage name from the resolved settings.
	Environment string `json:"environment"`
}
