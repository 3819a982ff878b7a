// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Dorokhov

package models

// ProcessedRecord wraps an arbitrary payload with processing metadata.
// The original payload is carried verbatim under OriginalData.
type ProcessedRecord struct {
	OriginalData map[string]any `json:"original_data"`

	// ProcessedAt is the local ISO-8601 time at which processing happened.
	ProcessedAt string `json:"processed_at"`

	// Status is always [StatusProcessed].
	Status string `json:"status"`

	// Version is the application version taken from the resolved settings.
	Version string `json:"version"`
}
