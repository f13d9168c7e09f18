package config

import "github.com/spf13/viper"

// Default values.
const (
	DefaultWorkers  = 4
	DefaultLogLevel = "info"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("compute_tree_hashes", false)
	v.SetDefault("workers", DefaultWorkers)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", false)
	v.SetDefault("log.color", false)
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Workers: DefaultWorkers,
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}
