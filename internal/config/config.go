// Package config layers command-line flags, LINDATRAN_* environment variables
// (optionally from a .env file) and a YAML config file into one Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "LINDATRAN"

	configName = ".lindatran"
)

// Config holds the settings shared by the text and file commands. Fields that
// a command has no flag for keep their zero value.
type Config struct {
	BaseURL    string        `mapstructure:"base-url"`
	Model      string        `mapstructure:"model"`
	SourceLang string        `mapstructure:"src"`
	TargetLang string        `mapstructure:"tgt"`
	Prompt     string        `mapstructure:"prompt"`
	PromptSet  bool          `mapstructure:"-"`
	Tags       bool          `mapstructure:"tags"`
	Clean      bool          `mapstructure:"clean"`
	Verify     bool          `mapstructure:"verify"`
	Output     string        `mapstructure:"output"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Proxy      string        `mapstructure:"proxy"`
	NoProxy    string        `mapstructure:"no-proxy"`
	Verbose    bool          `mapstructure:"verbose"`

	// ConfigFile is the file that was actually read, if any.
	ConfigFile string `mapstructure:"-"`
}

// Load resolves the configuration for one command. Precedence, highest first:
// flags set on the command line, environment, config file, flag defaults.
// cfgFile names an explicit config file; when empty $HOME/.lindatran.yaml and
// ./.lindatran.yaml are tried and a missing file is not an error.
func Load(flags *pflag.FlagSet, cfgFile string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		BaseURL:    v.GetString("base-url"),
		Model:      v.GetString("model"),
		SourceLang: v.GetString("src"),
		TargetLang: v.GetString("tgt"),
		Prompt:     v.GetString("prompt"),
		PromptSet:  v.IsSet("prompt"),
		Tags:       v.GetBool("tags"),
		Clean:      v.GetBool("clean"),
		Verify:     v.GetBool("verify"),
		Output:     v.GetString("output"),
		Timeout:    v.GetDuration("timeout"),
		Proxy:      v.GetString("proxy"),
		NoProxy:    v.GetString("no-proxy"),
		Verbose:    v.GetBool("verbose"),
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields every request needs.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
