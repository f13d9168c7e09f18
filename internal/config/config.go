package config

// Config holds the xrplhash settings.
type Config struct {
	// ComputeTreeHashes rebuilds the transaction and state trees of every
	// ledger and checks them against the header.
	ComputeTreeHashes bool `toml:"compute_tree_hashes" mapstructure:"compute_tree_hashes"`

	// Workers bounds how many ledger files are hashed at once.
	Workers int `toml:"workers" mapstructure:"workers"`

	Log LogConfig `toml:"log" mapstructure:"log"`

	configPath string `toml:"-" mapstructure:"-"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	JSON  bool   `toml:"json" mapstructure:"json"`
	Color bool   `toml:"color" mapstructure:"color"`
}

// GetConfigPath returns the file the configuration was read from, if any.
func (c *Config) GetConfigPath() string {
	return c.configPath
}
