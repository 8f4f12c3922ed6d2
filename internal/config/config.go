package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/wheelibin/ledpanel/internal/constants"
)

type StripConfig struct {
	Name string `mapstructure:"name" json:"name"`
	Host string `mapstructure:"host" json:"host"`
}

type Config struct {
	Strips             []StripConfig `mapstructure:"strips" json:"strips"`
	SpectrumImage      string        `mapstructure:"spectrumImage" json:"spectrumImage"`
	SpectrumWidth      int           `mapstructure:"spectrumWidth" json:"spectrumWidth"`
	PreviewLedCount    int           `mapstructure:"previewLedCount" json:"previewLedCount"`
	InFlightResetDelay time.Duration `mapstructure:"inFlightResetDelay" json:"inFlightResetDelay"`
	Throttle           time.Duration `mapstructure:"throttle" json:"throttle"`
	Database           string        `mapstructure:"database" json:"database"`
	Listen             string        `mapstructure:"listen" json:"listen"`
	LogLevel           string        `mapstructure:"logLevel" json:"logLevel"`
	LogFile            string        `mapstructure:"logFile" json:"logFile"`
}

func setDefaults() {
	viper.SetDefault("spectrumWidth", constants.DefaultSpectrumWidth)
	viper.SetDefault("previewLedCount", constants.DefaultPreviewLedCount)
	viper.SetDefault("inFlightResetDelay", constants.InFlightResetDelay)
	viper.SetDefault("throttle", constants.ThrottleInterval)
	viper.SetDefault("database", ":memory:")
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "logs/ledpanel.log")
}

// InitialiseConfig finds and reads the config file, configFile overrides the search paths when set
func InitialiseConfig(configFile string) (*Config, error) {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")                  // name of config file (without extension)
		viper.SetConfigType("json")                    // REQUIRED if the config file does not have the extension in the name
		viper.AddConfigPath("/etc/ledpanel/")          // path to look for the config file in
		viper.AddConfigPath("$HOME/.config/ledpanel/") // call multiple times to add many search paths
		viper.AddConfigPath(".")                       // optionally look for config in the working directory
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ReadConfig()
}

// ReadConfig decodes the currently loaded viper state
func ReadConfig() (*Config, error) {
	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}

// Watch re-reads the config whenever the file changes on disk
func Watch(logger *log.Logger, onChange func(cfg *Config)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("Config file changed", "file", e.Name, "op", e.Op.String())
		cfg, err := ReadConfig()
		if err != nil {
			logger.Error(err)
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}

func (c Config) Level() log.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func NewLogger(w io.Writer, cfg *Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
}
