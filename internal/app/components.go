package app

import "go.trai.ch/scriptmerge/internal/core/ports"

// Components groups the objects the command layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
