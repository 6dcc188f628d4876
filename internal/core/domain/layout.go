package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "scriptmerge.yaml"

	// EnvFileName is the name of the optional dotenv file read from the project root.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SCRIPTMERGE_"

	// DefaultOutDir is the output directory for merged components, relative to the root.
	DefaultOutDir = ".scriptmerge"

	// ManifestFileName is the name of the output manifest inside the output directory.
	ManifestFileName = ".manifest.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
