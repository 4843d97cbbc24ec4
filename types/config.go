package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	JSON      bool            `mapstructure:"json"`
	Scan      ScanConfig      `mapstructure:"scan" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Coralogix CoralogixConfig `mapstructure:"coralogix" validate:"omitempty"`
}

// ScanConfig holds directory/archive traversal policy.
type ScanConfig struct {
	// Recursive descends into subdirectories when scanning a directory.
	Recursive bool `mapstructure:"recursive"`
	// IncludeHidden includes dotfiles and dot-directories in scans.
	IncludeHidden bool `mapstructure:"includeHidden"`
	// Extensions are the file extensions treated as logs. Files without
	// any extension are always scanned.
	Extensions []string `mapstructure:"extensions" validate:"required,min=1,dive,startswith=."`
}

// ReportConfig holds report truncation limits.
type ReportConfig struct {
	// SampleLimit caps the verbatim sample findings kept in a report.
	SampleLimit int `mapstructure:"sampleLimit" validate:"required,min=1,max=500"`
	// TopMessages caps the ranked repeated-message list.
	TopMessages int `mapstructure:"topMessages" validate:"required,min=1,max=100"`
}

// ServerConfig holds bind settings for the local web app.
type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// CoralogixConfig holds settings for the optional Coralogix search proxy.
// The API key is usually supplied via the CORALOGIX_API_KEY environment
// variable rather than the config file.
type CoralogixConfig struct {
	Domain string `mapstructure:"domain" validate:"omitempty,hostname"`
	APIKey string `mapstructure:"apiKey"`
}
