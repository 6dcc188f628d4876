package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptmerge/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptmerge/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptmerge/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptmerge/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptmerge/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptmerge/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptmerge/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.FileSystemNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			report.NodeID,
			logger.NodeID,
			watcher.NodeID,
			manifest.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.Walker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	openManifest, err := graft.Dep[ports.ManifestFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fsys, walker, hasher, reporter, log, newWatcher, openManifest), nil
}
