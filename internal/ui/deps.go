// Package ui provides the GTK4 presentation layer of the kiosk.
package ui

import (
	"context"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/ui/theme"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to UI components.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager is watched for bookmark edits. Optional.
	ConfigManager *config.Manager

	Theme *theme.Manager

	// Use Cases
	ZoomUC       *usecase.ManageZoomUseCase
	AuthUC       *usecase.AuthenticateUseCase
	TLSUC        *usecase.TLSPolicyUseCase
	LoadFailedUC *usecase.HandleLoadFailedUseCase
	PopupPolicy  *usecase.PopupPolicy
	ResetUC      *usecase.ResetSessionUseCase

	// IdleInhibitor is optional.
	IdleInhibitor port.IdleInhibitor
	// SessionLog splits the log file per kiosk session. Optional.
	SessionLog SessionLogSink
}

// SessionLogSink starts a new log file for each kiosk session.
type SessionLogSink interface {
	StartSession(id string) error
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.ResetUC == nil {
		return ErrMissingDependency("ResetUC")
	}
	if d.LoadFailedUC == nil {
		return ErrMissingDependency("LoadFailedUC")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
