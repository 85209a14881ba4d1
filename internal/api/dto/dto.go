// Package dto defines the JSON request and response bodies of the HTTP API.
package dto

import "github.com/pkitools/keyscan/internal/report"

// ScanRequest asks the server to scan the given files or directories.
type ScanRequest struct {
	Paths []string `json:"paths"`
}

// ScanResponse carries the sorted inventory plus any per-file warnings
// collected while scanning.
type ScanResponse struct {
	Entries  []report.Entry `json:"entries"`
	Warnings []string       `json:"warnings,omitempty"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse carries an API error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
