// Package domain contains the core types shared by the resolver, the splicer and the host pipeline.
package domain

import (
	"maps"
	"slices"
	"strings"
)

const (
	// ComponentExtension is the suffix identifying component files.
	ComponentExtension = ".vue"

	// FilenamePlaceholder is replaced in the comment template with the script path
	// relative to the component's directory.
	FilenamePlaceholder = "{filename}"

	// DefaultSrcDir is the source subdirectory bare search directories are joined under.
	DefaultSrcDir = "src"

	// DefaultComment is the comment template injected above merged script content.
	DefaultComment = "// Injected from " + FilenamePlaceholder
)

// DefaultDirs returns the default search directory specifiers.
func DefaultDirs() []string {
	return []string{"scripts", "composables", "logic"}
}

// DefaultExtensions returns the default script suffixes in priority order.
func DefaultExtensions() []string {
	return []string{".script.js", ".js"}
}

// Config is the configuration of one plugin instance. It is built once and
// treated as immutable afterwards; use Clone before modifying a shared value.
type Config struct {
	// Dirs are the search directory specifiers, searched in order.
	Dirs []string
	// Extensions are the script suffixes in priority order.
	Extensions []string
	// Alias maps a path prefix to its replacement.
	Alias map[string]string
	// Debug enables debug and info level logging.
	Debug bool
	// PreferSameDir enables the same-directory fast path.
	PreferSameDir bool
	// RootDir is the project root. Empty means the process working directory.
	RootDir string
	// SrcDir is joined to RootDir for bare search directory specifiers.
	SrcDir string
	// Comment is the template for the injected comment.
	Comment string

	// Locator, when set, replaces the built-in script search.
	Locator ScriptLocator
	// Transformer, when set, replaces the default splicing rule.
	Transformer SourceTransformer
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Dirs:          DefaultDirs(),
		Extensions:    DefaultExtensions(),
		Alias:         map[string]string{},
		PreferSameDir: true,
		SrcDir:        DefaultSrcDir,
		Comment:       DefaultComment,
	}
}

// WithDefaults returns a copy of c where empty list, map and string fields are
// replaced by their defaults. Boolean fields are kept as they are.
func (c Config) WithDefaults() Config {
	out := c.Clone()
	if len(out.Dirs) == 0 {
		out.Dirs = DefaultDirs()
	}
	if len(out.Extensions) == 0 {
		out.Extensions = DefaultExtensions()
	}
	if out.Alias == nil {
		out.Alias = map[string]string{}
	}
	if out.SrcDir == "" {
		out.SrcDir = DefaultSrcDir
	}
	if out.Comment == "" {
		out.Comment = DefaultComment
	}
	return out
}

// Clone returns a deep copy of the list and map fields.
func (c Config) Clone() Config {
	out := c
	out.Dirs = slices.Clone(c.Dirs)
	out.Extensions = slices.Clone(c.Extensions)
	if c.Alias != nil {
		out.Alias = maps.Clone(c.Alias)
	}
	return out
}

// Validate reports configuration values the resolver cannot work with.
func (c Config) Validate() error {
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			return ErrInvalidExtension
		}
	}
	for _, dir := range c.Dirs {
		if strings.TrimSpace(dir) == "" {
			return ErrInvalidSearchDir
		}
	}
	return nil
}

// IsComponent reports whether path names a component file.
func IsComponent(path string) bool {
	return strings.HasSuffix(path, ComponentExtension)
}
