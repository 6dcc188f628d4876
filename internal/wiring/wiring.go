// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scriptmerge/internal/adapters/config"
	_ "go.trai.ch/scriptmerge/internal/adapters/fs"
	_ "go.trai.ch/scriptmerge/internal/adapters/logger"
	_ "go.trai.ch/scriptmerge/internal/adapters/manifest"
	_ "go.trai.ch/scriptmerge/internal/adapters/report"
	_ "go.trai.ch/scriptmerge/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/scriptmerge/internal/app"
)
