package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidExtension is returned when an extension suffix is empty.
	ErrInvalidExtension = zerr.New("extension suffix must not be empty")

	// ErrInvalidSearchDir is returned when a search directory specifier is empty.
	ErrInvalidSearchDir = zerr.New("search directory must not be empty")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileParseFailed is returned when the .env file cannot be parsed.
	ErrEnvFileParseFailed = zerr.New("failed to parse env file")

	// ErrInvalidEnvValue is returned when an environment override has an invalid value.
	ErrInvalidEnvValue = zerr.New("invalid environment variable value")

	// ErrSearchDirMissing is reported when a search directory does not exist.
	ErrSearchDirMissing = zerr.New("search directory does not exist")

	// ErrSearchDirReadFailed is reported when a search directory cannot be enumerated.
	ErrSearchDirReadFailed = zerr.New("failed to read search directory")

	// ErrScriptReadFailed is reported when a resolved script file cannot be read.
	ErrScriptReadFailed = zerr.New("failed to read script file")

	// ErrTransformFailed is reported when a custom transformer returns an error.
	ErrTransformFailed = zerr.New("custom transform failed")

	// ErrScriptNotFound is returned when no external script exists for a component.
	ErrScriptNotFound = zerr.New("no external script found for component")

	// ErrNotAComponent is returned when a path does not name a component file.
	ErrNotAComponent = zerr.New("not a component file")

	// ErrComponentReadFailed is returned when a component file cannot be read.
	ErrComponentReadFailed = zerr.New("failed to read component file")

	// ErrOutputWriteFailed is returned when a merged component cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write merged component")

	// ErrFailedToResolveRelativePath is returned when a relative path cannot be resolved.
	ErrFailedToResolveRelativePath = zerr.New("failed to resolve relative path")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrBuildFailed is returned when at least one component failed to build.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildInterrupted is returned when a build is cancelled before all files were processed.
	ErrBuildInterrupted = zerr.New("build interrupted")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrManifestReadFailed is returned when the output manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read output manifest")

	// ErrManifestWriteFailed is returned when the output manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write output manifest")

	// ErrOutputRemoveFailed is returned when a previously merged output cannot be removed.
	ErrOutputRemoveFailed = zerr.New("failed to remove merged component")
)
