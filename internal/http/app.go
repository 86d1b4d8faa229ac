// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"phonedesk/platform/config"
	"phonedesk/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.AuthConfig
	config.RateLimitConfig
}

// ReadinessReporter exposes minimal functionality for readiness checks.
// The phone module's region registry reports how many numbering plans loaded.
type ReadinessReporter interface {
	Count() int
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Readiness is used for the health endpoint.
	Readiness ReadinessReporter
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
