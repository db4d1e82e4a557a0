package config

// Config holds pdf-toolbox configuration.
// Loaded from ./config.yaml or ~/.pdftoolbox/config.yaml; every key can
// be overridden with a PDFTOOLBOX_-prefixed environment variable.
type Config struct {
	Server    ServerCfg    `mapstructure:"server" yaml:"server" json:"server"`
	Uploads   UploadsCfg   `mapstructure:"uploads" yaml:"uploads" json:"uploads"`
	RateLimit RateLimitCfg `mapstructure:"rate_limit" yaml:"rate_limit" json:"rate_limit"`
	CORS      CORSCfg      `mapstructure:"cors" yaml:"cors" json:"cors"`
	LogLevel  string       `mapstructure:"log_level" yaml:"log_level" json:"log_level"` // "debug", "info", "warn", "error"
}

// ServerCfg holds HTTP listener settings.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host" json:"host"`
	Port string `mapstructure:"port" yaml:"port" json:"port"`
}

// UploadsCfg bounds what clients may send.
type UploadsCfg struct {
	// MaxFileBytes caps a single uploaded file.
	MaxFileBytes int64 `mapstructure:"max_file_bytes" yaml:"max_file_bytes" json:"max_file_bytes"`
	// MaxMergeFiles caps how many files one merge request may carry.
	MaxMergeFiles int `mapstructure:"max_merge_files" yaml:"max_merge_files" json:"max_merge_files"`
}

// RateLimitCfg configures the per-client request limiter.
type RateLimitCfg struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Requests      int  `mapstructure:"requests" yaml:"requests" json:"requests"`                   // per window per client
	WindowMinutes int  `mapstructure:"window_minutes" yaml:"window_minutes" json:"window_minutes"` // window length
}

// CORSCfg configures cross-origin access.
type CORSCfg struct {
	// AllowedOrigins lists origins granted access; ["*"] allows all.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" json:"allowed_origins"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Uploads: UploadsCfg{
			MaxFileBytes:  100 << 20, // 100 MiB
			MaxMergeFiles: 20,
		},
		RateLimit: RateLimitCfg{
			Enabled:       true,
			Requests:      30,
			WindowMinutes: 60,
		},
		CORS: CORSCfg{
			AllowedOrigins: []string{"*"},
		},
		LogLevel: "info",
	}
}
