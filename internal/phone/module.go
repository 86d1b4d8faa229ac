// Package phone provides the phone number query bounded context module.
package phone

import (
	apphttp "phonedesk/internal/http"
	"phonedesk/internal/phone/handler"
	"phonedesk/internal/phone/region"
	"phonedesk/internal/phone/service"
	"phonedesk/platform/config"
	"phonedesk/platform/logger"
	"phonedesk/platform/validator"
)

// Module is the phone query bounded context implementing http.Module.
type Module struct {
	handler  *handler.Handler
	service  *service.Service
	registry *region.Registry
}

// NewModule creates and initializes the phone module.
func NewModule(registry *region.Registry, val *validator.Validator, cfg config.LookupConfig, log *logger.Logger) *Module {
	svc := service.New(registry, val, log, cfg.GetGeocodingLang())
	h := handler.New(svc, val)

	return &Module{
		handler:  h,
		service:  svc,
		registry: registry,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "phone"
}

// Service returns the service layer for external use (the CLI reuses it).
func (m *Module) Service() *service.Service {
	return m.service
}

// Registry returns the region registry for readiness reporting.
func (m *Module) Registry() *region.Registry {
	return m.registry
}

// RegisterRoutes mounts phone routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/phone")
	group.GET("/info", m.handler.Info)
	group.POST("/normalize", m.handler.Normalize)
	group.POST("/normalize/:preset", m.handler.NormalizePreset)
	group.GET("/validate", m.handler.Validate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
