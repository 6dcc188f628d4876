// Package resolver maps component files to the external script files merged into them.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver finds the external script for a component file. Results are cached per
// component path for the lifetime of the Resolver.
type Resolver struct {
	root          string
	srcDir        string
	dirs          []string
	extensions    []string
	preferSameDir bool
	locator       domain.ScriptLocator

	fsys  ports.FileSystem
	log   ports.Logger
	cache *Cache

	aliasMu sync.RWMutex
	aliases map[string]string
}

// New creates a Resolver for cfg. Empty fields of cfg are filled with defaults and
// an empty RootDir resolves to the process working directory.
func New(cfg domain.Config, fsys ports.FileSystem, log ports.Logger) (*Resolver, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	return &Resolver{
		root:          root,
		srcDir:        cfg.SrcDir,
		dirs:          cfg.Dirs,
		extensions:    cfg.Extensions,
		preferSameDir: cfg.PreferSameDir,
		locator:       cfg.Locator,
		fsys:          fsys,
		log:           log,
		cache:         NewCache(),
		aliases:       cfg.Alias,
	}, nil
}

// Root returns the absolute project root.
func (r *Resolver) Root() string {
	return r.root
}

// MergeAliases adds host aliases to the alias table. Keys already present win.
func (r *Resolver) MergeAliases(aliases map[string]string) {
	r.aliasMu.Lock()
	defer r.aliasMu.Unlock()

	for key, target := range aliases {
		if _, exists := r.aliases[key]; !exists {
			r.aliases[key] = target
		}
	}
}

// Aliases returns a copy of the current alias table.
func (r *Resolver) Aliases() map[string]string {
	r.aliasMu.RLock()
	defer r.aliasMu.RUnlock()
	return maps.Clone(r.aliases)
}

// Resolve returns the script path for componentPath. The first result for a path is
// cached and returned on every later call, whatever happens on disk in between.
func (r *Resolver) Resolve(componentPath string) (string, bool) {
	res := r.cache.GetOrResolve(componentPath, r.locate)
	return res.Path, res.Found
}

func (r *Resolver) locate(componentPath string) domain.Resolution {
	if r.locator != nil {
		if path, ok := r.locator.Locate(componentPath); ok {
			r.log.Debug(fmt.Sprintf("custom locator resolved %s to %s", componentPath, path))
			return domain.Resolved(path)
		}
		r.log.Debug(fmt.Sprintf("custom locator found no script for %s", componentPath))
		return domain.NotFound
	}

	base := componentBase(componentPath)

	if r.preferSameDir {
		if path, ok := r.findSameDir(componentPath, base); ok {
			r.log.Debug(fmt.Sprintf("resolved %s to %s in the same directory", componentPath, path))
			return domain.Resolved(path)
		}
	}

	for _, entry := range r.dirs {
		dir := r.searchDirPath(entry)
		if path, ok := r.searchDir(dir, base); ok {
			r.log.Info(fmt.Sprintf("resolved %s to %s", componentPath, path))
			return domain.Resolved(path)
		}
	}

	r.log.Debug(fmt.Sprintf("no script found for %s", componentPath))
	return domain.NotFound
}

func (r *Resolver) findSameDir(componentPath, base string) (string, bool) {
	dir := filepath.Dir(componentPath)
	for _, ext := range r.extensions {
		candidate := filepath.Join(dir, base+ext)
		info, err := r.fsys.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// searchDirPath turns a search directory specifier into an absolute directory.
func (r *Resolver) searchDirPath(entry string) string {
	path := entry
	if rewritten, ok := r.rewriteAlias(path); ok {
		path = rewritten
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.root, path)
		}
	}

	switch {
	case filepath.IsAbs(path):
		path = filepath.Clean(path)
	case isRelative(path):
		path = filepath.Join(r.root, path)
	default:
		path = filepath.Join(r.root, r.srcDir, path)
	}

	if rewritten, ok := r.rewriteAlias(path); ok {
		path = filepath.Clean(rewritten)
	}
	return path
}

// rewriteAlias replaces the longest alias key that prefixes path on a path boundary.
func (r *Resolver) rewriteAlias(path string) (string, bool) {
	r.aliasMu.RLock()
	defer r.aliasMu.RUnlock()

	bestKey := ""
	for key := range r.aliases {
		if key == "" || len(key) <= len(bestKey) {
			continue
		}
		if hasPathPrefix(path, key) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return path, false
	}
	return r.aliases[bestKey] + path[len(bestKey):], true
}

// searchDir scans dir recursively for a script matching base. Extension priority
// comes first, enumeration order second.
func (r *Resolver) searchDir(dir, base string) (string, bool) {
	info, err := r.fsys.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.log.Warn(fmt.Sprintf("%s: %s", domain.ErrSearchDirMissing.Error(), dir))
		return "", false
	case err != nil:
		r.log.Error(zerr.With(zerr.Wrap(err, domain.ErrSearchDirReadFailed.Error()), "dir", dir))
		return "", false
	case !info.IsDir():
		r.log.Warn(fmt.Sprintf("search directory is not a directory: %s", dir))
		return "", false
	}

	candidates, err := r.collect(dir)
	if err != nil {
		r.log.Error(zerr.With(zerr.Wrap(err, domain.ErrSearchDirReadFailed.Error()), "dir", dir))
		return "", false
	}

	for _, ext := range r.extensions {
		for _, c := range candidates {
			if c.Extension == ext && matches(c, base) {
				return c.Path, true
			}
		}
	}
	return "", false
}

func (r *Resolver) collect(dir string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	err := r.fsys.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		ext := r.extensionOf(name)
		if ext == "" {
			return nil
		}
		candidates = append(candidates, domain.Candidate{
			Path:      path,
			Name:      name,
			Base:      strings.TrimSuffix(name, ext),
			Extension: ext,
		})
		return nil
	})
	return candidates, err
}

// extensionOf returns the first configured suffix name ends with.
func (r *Resolver) extensionOf(name string) string {
	for _, ext := range r.extensions {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}

func matches(c domain.Candidate, base string) bool {
	return c.Base == base ||
		strings.HasPrefix(c.Name, base+".") ||
		strings.Contains(c.Path, "/"+base+"/index") ||
		strings.Contains(c.Path, `\`+base+`\index`)
}

func componentBase(componentPath string) string {
	name := filepath.Base(componentPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func isRelative(path string) bool {
	slashed := filepath.ToSlash(path)
	return slashed == "." || slashed == ".." ||
		strings.HasPrefix(slashed, "./") || strings.HasPrefix(slashed, "../")
}

func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) || strings.HasSuffix(prefix, "/") || strings.HasSuffix(prefix, `\`) {
		return true
	}
	next := path[len(prefix)]
	return next == '/' || next == '\\'
}
