package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/types"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".logsreview"
	envPrefix  = "LOGSREVIEW"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	if err := validate.Struct(config); err != nil {
		return err
	}
	return nil
}

// InitConfig reads in the config file and environment variables if set.
func InitConfig() {
	// Load .env first if present; missing is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. LOGSREVIEW_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(configName) // .logsreview.yaml
	}

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found by the search paths; defaults and env
			// variables apply.
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}
}

func setConfigDefaults() {
	viper.SetDefault("scan.recursive", true)
	viper.SetDefault("scan.includeHidden", false)
	viper.SetDefault("scan.extensions", []string{".log", ".txt", ".out", ".err"})

	viper.SetDefault("report.sampleLimit", 20)
	viper.SetDefault("report.topMessages", 10)

	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8000)

	viper.SetDefault("coralogix.domain", "api.coralogix.com")
	viper.SetDefault("coralogix.apiKey", "")
}

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
