// Package config provides the configuration loader for scriptmerge.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file.
const (
	EnvDebug         = domain.EnvPrefix + "DEBUG"
	EnvDirs          = domain.EnvPrefix + "DIRS"
	EnvExtensions    = domain.EnvPrefix + "EXTENSIONS"
	EnvSrcDir        = domain.EnvPrefix + "SRC_DIR"
	EnvComment       = domain.EnvPrefix + "COMMENT"
	EnvPreferSameDir = domain.EnvPrefix + "PREFER_SAME_DIR"
)

// Loader implements ports.ConfigLoader on top of scriptmerge.yaml, an optional .env
// file and the process environment.
type Loader struct {
	FS        ports.FileSystem
	Logger    ports.Logger
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{FS: fsys, Logger: logger, LookupEnv: os.LookupEnv}
}

// Load builds the configuration for the project rooted at root. Later sources win:
// defaults, then scriptmerge.yaml, then the environment. Variables from .env only
// apply when the real environment does not set them.
func (l *Loader) Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.RootDir = root

	if err := l.applyConfigfile(&cfg, root); err != nil {
		return domain.Config{}, err
	}

	dotenv, err := l.readDotenv(root)
	if err != nil {
		return domain.Config{}, err
	}

	if err := l.applyEnv(&cfg, dotenv); err != nil {
		return domain.Config{}, err
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (l *Loader) applyConfigfile(cfg *domain.Config, root string) error {
	configPath := filepath.Join(root, domain.ConfigFileName)

	var file Configfile
	found, err := l.readAndUnmarshalYAML(configPath, &file)
	if err != nil {
		return err
	}
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s in %s, using defaults", domain.ConfigFileName, root))
		return nil
	}

	if file.Root != "" {
		cfg.RootDir = resolveRoot(root, file.Root)
	}
	if file.SrcDir != "" {
		cfg.SrcDir = file.SrcDir
	}
	if len(file.Dirs) > 0 {
		cfg.Dirs = file.Dirs
	}
	if len(file.Extensions) > 0 {
		cfg.Extensions = file.Extensions
	}
	for key, target := range file.Alias {
		cfg.Alias[key] = target
	}
	if file.Comment != "" {
		cfg.Comment = file.Comment
	}
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	if file.PreferSameDir != nil {
		cfg.PreferSameDir = *file.PreferSameDir
	}
	return nil
}

// readAndUnmarshalYAML decodes the file at configPath into target, rejecting unknown
// keys. A missing file reports found=false.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) (bool, error) {
	data, err := l.FS.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return true, nil
}

func (l *Loader) readDotenv(root string) (map[string]string, error) {
	envPath := filepath.Join(root, domain.EnvFileName)

	data, err := l.FS.ReadFile(envPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", envPath)
	}

	values, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileParseFailed.Error()), "path", envPath)
	}
	return values, nil
}

func (l *Loader) applyEnv(cfg *domain.Config, dotenv map[string]string) error {
	lookup := func(key string) (string, bool) {
		if l.LookupEnv != nil {
			if v, ok := l.LookupEnv(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvDirs); ok {
		cfg.Dirs = splitList(v)
	}
	if v, ok := lookup(EnvExtensions); ok {
		cfg.Extensions = splitList(v)
	}
	if v, ok := lookup(EnvSrcDir); ok && v != "" {
		cfg.SrcDir = v
	}
	if v, ok := lookup(EnvComment); ok && v != "" {
		cfg.Comment = v
	}

	for key, dst := range map[string]*bool{EnvDebug: &cfg.Debug, EnvPreferSameDir: &cfg.PreferSameDir} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidEnvValue.Error()), "variable", key)
		}
		*dst = b
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func resolveRoot(base, root string) string {
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(base, root)
}
