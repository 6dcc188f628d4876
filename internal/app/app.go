// Package app implements the application layer for scriptmerge.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/scriptmerge/internal/adapters/watcher" //nolint:depguard // debouncer is shared with the watch loop
	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/scriptmerge/internal/plugin"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	fsys           ports.FileSystem
	walker         ports.Walker
	hasher         ports.Hasher
	reporter       ports.Reporter
	logger         ports.Logger
	newWatcher     ports.WatcherFactory
	openManifest   ports.ManifestFactory
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	walker ports.Walker,
	hasher ports.Hasher,
	reporter ports.Reporter,
	log ports.Logger,
	newWatcher ports.WatcherFactory,
	openManifest ports.ManifestFactory,
) *App {
	return &App{
		configLoader:   loader,
		fsys:           fsys,
		walker:         walker,
		hasher:         hasher,
		reporter:       reporter,
		logger:         log,
		newWatcher:     newWatcher,
		openManifest:   openManifest,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets the quiet period the watch loop waits for before rebuilding.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// ConfigOverrides are command-line settings applied on top of the loaded configuration.
type ConfigOverrides struct {
	Root       string
	Debug      bool
	Dirs       []string
	Extensions []string
	SrcDir     string
	Comment    string
	NoSameDir  bool
	// Alias entries are handed to the plugin as host aliases, so keys from the
	// configuration file take precedence.
	Alias map[string]string
}

// BuildOptions configuration for the Build and Watch methods.
type BuildOptions struct {
	Config  ConfigOverrides
	OutDir  string
	DryRun  bool
	Ignores []string
}

// LoadConfig loads the project configuration and applies the overrides.
func (a *App) LoadConfig(o ConfigOverrides) (domain.Config, error) {
	root := o.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	cfg, err := a.configLoader.Load(absRoot)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if cfg.RootDir == "" {
		cfg.RootDir = absRoot
	}
	if o.Debug {
		cfg.Debug = true
	}
	if len(o.Dirs) > 0 {
		cfg.Dirs = o.Dirs
	}
	if len(o.Extensions) > 0 {
		cfg.Extensions = o.Extensions
	}
	if o.SrcDir != "" {
		cfg.SrcDir = o.SrcDir
	}
	if o.Comment != "" {
		cfg.Comment = o.Comment
	}
	if o.NoSameDir {
		cfg.PreferSameDir = false
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}

	a.logger.SetDebug(cfg.Debug)
	return cfg, nil
}

// newPlugin creates a fresh plugin instance, so every call starts with an empty cache.
func (a *App) newPlugin(o ConfigOverrides) (*plugin.Plugin, domain.Config, error) {
	cfg, err := a.LoadConfig(o)
	if err != nil {
		return nil, domain.Config{}, err
	}

	p, err := plugin.New(cfg, a.fsys, a.logger)
	if err != nil {
		return nil, domain.Config{}, err
	}
	p.ConfigResolved(o.Alias)
	return p, p.Config(), nil
}

// Build merges every component below the source directory into the output directory.
// Failing components do not stop the build; they are reported and turn the result
// into ErrBuildFailed. Outputs recorded by an earlier build whose component no longer
// merges are removed.
func (a *App) Build(ctx context.Context, opts BuildOptions) (domain.BuildSummary, error) {
	p, cfg, err := a.newPlugin(opts.Config)
	if err != nil {
		return domain.BuildSummary{}, err
	}

	root := p.Root()
	srcRoot := filepath.Join(root, cfg.SrcDir)
	outDir := outputDir(root, opts.OutDir)
	components := a.collectComponents(srcRoot, outDir, opts.Ignores)

	var m ports.Manifest
	if !opts.DryRun {
		m = a.loadManifest(outDir)
	}

	a.reporter.OnBuildStart(root, len(components))
	start := time.Now()

	results := make([]domain.FileResult, len(components))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, component := range components {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			res := a.buildFile(p, m, component, srcRoot, outDir, opts.DryRun)
			results[i] = res
			a.reporter.OnFileResult(res)
			return nil
		})
	}
	_ = g.Wait()

	processed := make([]domain.FileResult, 0, len(results))
	var failures []error
	for _, res := range results {
		if res.Component == "" {
			continue
		}
		processed = append(processed, res)
		if res.Err != nil {
			failures = append(failures, res.Err)
		}
	}

	summary := domain.Summarize(processed)
	summary.DryRun = opts.DryRun
	a.reporter.OnBuildComplete(summary, time.Since(start))

	if err := ctx.Err(); err != nil {
		return summary, errors.Join(domain.ErrBuildInterrupted, err)
	}

	if m != nil {
		a.pruneStale(m, outDir, processed)
		if err := m.Save(); err != nil {
			a.logger.Error(err)
		}
	}
	if len(failures) > 0 {
		return summary, errors.Join(append([]error{domain.ErrBuildFailed}, failures...)...)
	}
	return summary, nil
}

// collectComponents returns the component files below srcRoot, skipping the output directory.
func (a *App) collectComponents(srcRoot, outDir string, ignores []string) []string {
	if info, err := a.fsys.Stat(srcRoot); err != nil || !info.IsDir() {
		a.logger.Warn(fmt.Sprintf("source directory %s does not exist, nothing to merge", srcRoot))
		return nil
	}

	ignores = append([]string(nil), ignores...)
	if rel, err := filepath.Rel(srcRoot, outDir); err == nil && !strings.HasPrefix(rel, "..") {
		rel = filepath.ToSlash(rel)
		ignores = append(ignores, rel, rel+"/**")
	}

	var components []string
	for path := range a.walker.WalkFiles(srcRoot, ignores) {
		if domain.IsComponent(path) && !isWithin(outDir, path) {
			components = append(components, path)
		}
	}
	return components
}

func (a *App) buildFile(
	p *plugin.Plugin, m ports.Manifest, component, srcRoot, outDir string, dryRun bool,
) domain.FileResult {
	res := domain.FileResult{Component: component}
	fail := func(err error) domain.FileResult {
		res.Status = domain.StatusFailed
		res.Err = err
		return res
	}

	rel, err := filepath.Rel(srcRoot, component)
	if err != nil {
		return fail(zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRelativePath.Error()), "component", component))
	}
	res.Output = filepath.Join(outDir, rel)

	source, err := a.fsys.ReadFile(component)
	if err != nil {
		return fail(zerr.With(zerr.Wrap(err, domain.ErrComponentReadFailed.Error()), "component", component))
	}

	merged, changed := p.Transform(string(source), component)
	if !changed {
		res.Status = domain.StatusUnchanged
		res.Output = ""
		return res
	}
	res.Script, _ = p.Resolve(component)
	hash := a.hasher.ComputeHash([]byte(merged))

	res.Status = domain.StatusMerged
	if existing, err := a.hasher.ComputeFileHash(res.Output); err == nil && existing == hash {
		res.Status = domain.StatusUpToDate
	} else if !dryRun {
		if err := writeOutput(res.Output, []byte(merged)); err != nil {
			return fail(err)
		}
	}

	if m != nil {
		m.Put(domain.OutputRecord{
			Output:    filepath.ToSlash(rel),
			Component: component,
			Script:    res.Script,
			Hash:      hash,
		})
	}
	return res
}

// loadManifest opens the manifest of outDir. An unreadable manifest disables pruning
// for this build.
func (a *App) loadManifest(outDir string) ports.Manifest {
	if a.openManifest == nil {
		return nil
	}
	m, err := a.openManifest(filepath.Join(outDir, domain.ManifestFileName))
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring unreadable manifest: %v", err))
		return nil
	}
	return m
}

// pruneStale removes recorded outputs that this build did not produce.
func (a *App) pruneStale(m ports.Manifest, outDir string, results []domain.FileResult) {
	keep := make(map[string]bool, len(results))
	for _, res := range results {
		if res.Output == "" {
			continue
		}
		if rel, err := filepath.Rel(outDir, res.Output); err == nil {
			keep[filepath.ToSlash(rel)] = true
		}
	}

	for _, out := range m.Outputs() {
		if keep[out] {
			continue
		}
		path := filepath.Join(outDir, filepath.FromSlash(out))
		if err := removeOutput(path, outDir); err != nil {
			a.logger.Error(err)
			continue
		}
		m.Delete(out)
		a.logger.Info(fmt.Sprintf("removed stale output %s", out))
	}
}

// Clean removes every output recorded in the manifest of the output directory and
// returns how many records were cleared. The output directory itself is removed
// once empty.
func (a *App) Clean(_ context.Context, opts BuildOptions) (int, error) {
	cfg, err := a.LoadConfig(opts.Config)
	if err != nil {
		return 0, err
	}
	outDir := outputDir(cfg.RootDir, opts.OutDir)

	m, err := a.openManifest(filepath.Join(outDir, domain.ManifestFileName))
	if err != nil {
		return 0, err
	}

	var errs []error
	removed := 0
	for _, out := range m.Outputs() {
		if err := removeOutput(filepath.Join(outDir, filepath.FromSlash(out)), outDir); err != nil {
			errs = append(errs, err)
			continue
		}
		m.Delete(out)
		removed++
	}

	if err := m.Save(); err != nil {
		errs = append(errs, err)
	}
	_ = os.Remove(outDir)

	if len(errs) > 0 {
		return removed, errors.Join(errs...)
	}
	a.logger.Info(fmt.Sprintf("removed %d merged component(s) from %s", removed, outDir))
	return removed, nil
}

// removeOutput deletes path and every parent below outDir left empty. A missing
// file is not an error.
func removeOutput(path, outDir string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputRemoveFailed.Error()), "path", path)
	}
	for dir := filepath.Dir(path); dir != outDir && isWithin(outDir, dir); dir = filepath.Dir(dir) {
		if os.Remove(dir) != nil {
			break
		}
	}
	return nil
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// Resolve returns the external script for component.
func (a *App) Resolve(_ context.Context, o ConfigOverrides, component string) (string, error) {
	p, _, err := a.newPlugin(o)
	if err != nil {
		return "", err
	}

	path, err := absComponent(component)
	if err != nil {
		return "", err
	}

	script, ok := p.Resolve(path)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrScriptNotFound, ""), "component", path)
	}
	return script, nil
}

// TransformFile writes the merged source of component to w, or the original source
// when nothing was merged. It reports whether the source changed.
func (a *App) TransformFile(_ context.Context, o ConfigOverrides, component string, w io.Writer) (bool, error) {
	p, _, err := a.newPlugin(o)
	if err != nil {
		return false, err
	}

	path, err := absComponent(component)
	if err != nil {
		return false, err
	}

	source, err := a.fsys.ReadFile(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrComponentReadFailed.Error()), "component", path)
	}

	out, changed := p.Transform(string(source), path)
	if _, err := io.WriteString(w, out); err != nil {
		return false, zerr.Wrap(err, "failed to write output")
	}
	return changed, nil
}

// Watch builds once and then rebuilds after changes below the project root until
// ctx is done. Every build uses a fresh plugin instance.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.LoadConfig(opts.Config)
	if err != nil {
		return err
	}
	root := cfg.RootDir
	outDir := outputDir(root, opts.OutDir)

	if err := a.rebuild(ctx, opts); err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	if err := w.Start(ctx, root); err != nil {
		_ = w.Stop()
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "root", root)
	}
	defer func() { _ = w.Stop() }()

	pending := make(chan struct{}, 1)
	d := watcher.NewDebouncer(a.debounceWindow, func([]string) {
		select {
		case pending <- struct{}{}:
		default:
		}
	})
	defer d.Stop()

	go func() {
		for event := range w.Events() {
			if isWithin(outDir, event.Path) {
				continue
			}
			d.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s for changes", root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending:
			a.logger.Info("change detected, rebuilding")
			if err := a.rebuild(ctx, opts); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

// rebuild runs one build. Component failures are logged and swallowed; other
// errors are returned.
func (a *App) rebuild(ctx context.Context, opts BuildOptions) error {
	_, err := a.Build(ctx, opts)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrBuildFailed):
		a.logger.Error(err)
		return nil
	case errors.Is(err, domain.ErrBuildInterrupted):
		return nil
	default:
		return err
	}
}

func outputDir(root, outDir string) string {
	if outDir == "" {
		outDir = domain.DefaultOutDir
	}
	if filepath.IsAbs(outDir) {
		return filepath.Clean(outDir)
	}
	return filepath.Join(root, outDir)
}

func absComponent(component string) (string, error) {
	path, err := filepath.Abs(component)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRelativePath.Error()), "component", component)
	}
	if !domain.IsComponent(path) {
		return "", zerr.With(zerr.Wrap(domain.ErrNotAComponent, ""), "path", path)
	}
	return path, nil
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
