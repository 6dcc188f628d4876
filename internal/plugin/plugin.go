// Package plugin exposes the resolver and the splicer through the hooks a build
// pipeline calls: a configuration-finalized hook and a per-file transform hook.
package plugin

import (
	"maps"

	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/scriptmerge/internal/engine/resolver"
	"go.trai.ch/scriptmerge/internal/engine/splice"
)

// Name identifies the plugin to a host pipeline.
const Name = "scriptmerge"

// Plugin is one configured instance. Each instance owns its resolution cache, so
// independent instances never share results. A Plugin is safe for concurrent use.
type Plugin struct {
	cfg         domain.Config
	resolver    *resolver.Resolver
	transformer *splice.Transformer
}

// New creates a Plugin for cfg. Debug and info messages sent to log are dropped
// unless cfg.Debug is set.
func New(cfg domain.Config, fsys ports.FileSystem, log ports.Logger) (*Plugin, error) {
	cfg = cfg.WithDefaults()
	gated := &gatedLogger{Logger: log, debug: cfg.Debug}

	r, err := resolver.New(cfg, fsys, gated)
	if err != nil {
		return nil, err
	}

	return &Plugin{
		cfg:         cfg,
		resolver:    r,
		transformer: splice.NewTransformer(r, fsys, gated, cfg.Comment, cfg.Transformer),
	}, nil
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return Name
}

// Config returns a copy of the effective configuration.
func (p *Plugin) Config() domain.Config {
	cfg := p.cfg.Clone()
	cfg.Alias = p.resolver.Aliases()
	return cfg
}

// Root returns the absolute project root.
func (p *Plugin) Root() string {
	return p.resolver.Root()
}

// ConfigResolved merges the host's alias table into the resolver's. Aliases from
// the plugin configuration take precedence. Call it before the first Transform.
func (p *Plugin) ConfigResolved(aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}
	p.resolver.MergeAliases(maps.Clone(aliases))
}

// Transform is the per-file hook. It returns the replacement source for id and
// true, or the original code and false when the file is left untouched.
func (p *Plugin) Transform(code, id string) (string, bool) {
	return p.transformer.Transform(code, id)
}

// Resolve returns the external script for the component at id.
func (p *Plugin) Resolve(id string) (string, bool) {
	return p.resolver.Resolve(id)
}

// gatedLogger drops debug and info messages unless debug output is enabled.
type gatedLogger struct {
	ports.Logger
	debug bool
}

func (g *gatedLogger) Debug(msg string) {
	if g.debug {
		g.Logger.Debug(msg)
	}
}

func (g *gatedLogger) Info(msg string) {
	if g.debug {
		g.Logger.Info(msg)
	}
}
