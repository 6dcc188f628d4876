package config

// Configfile represents the structure of the scriptmerge.yaml configuration file.
type Configfile struct {
	Version       string            `yaml:"version"`
	Root          string            `yaml:"root"`
	SrcDir        string            `yaml:"srcDir"`
	Dirs          []string          `yaml:"dirs"`
	Extensions    []string          `yaml:"extensions"`
	Alias         map[string]string `yaml:"alias"`
	Comment       string            `yaml:"comment"`
	Debug         *bool             `yaml:"debug"`
	PreferSameDir *bool             `yaml:"preferSameDir"`
}
