// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"watchlist/internal/config"
	"watchlist/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "WATCHLIST"

// overrides maps config keys to the flags that can set them. The environment
// variable of a key is WATCHLIST_ followed by the key in upper case with
// dots replaced by underscores.
var overrides = []struct {
	key  string
	flag string
}{
	{key: "database.path", flag: "db-path"},
	{key: "logging.level", flag: "log-level"},
	{key: "logging.file", flag: "log-file"},
	{key: "logging.audit_enabled", flag: "audit-enabled"},
}

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	if err := bindFlag(v, flags, "config_path", "config_path"); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if err := bindFlag(v, flags, o.key, o.flag); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return fmt.Errorf("failed to bind flag --%s: not defined", name)
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag --%s: %w", name, err)
	}
	return nil
}

// initializeConfig loads the config file and applies environment and flag
// overrides. Precedence: flags > env > file > defaults.
func (options *GlobalOptions) initializeConfig(cmd *cobra.Command) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	options.CfgFilePath = v.GetString("config_path")
	cfg, err := config.LoadConfig(options.CfgFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load configuration from %s: %w", options.CfgFilePath, err)
		}
		// Create empty config if not found, rely on defaults/flags
		cfg = &config.Config{}
	}

	applyOverrides(cfg, v)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	options.Conf = cfg

	return options.initLogging()
}

func applyOverrides(c *config.Config, v *viper.Viper) {
	if s := v.GetString("database.path"); s != "" {
		c.Database.Path = s
	}
	if s := v.GetString("logging.level"); s != "" {
		c.Logging.Level = s
	}
	if s := v.GetString("logging.file"); s != "" {
		c.Logging.File = s
	}
	if v.IsSet("logging.audit_enabled") {
		c.Logging.AuditEnabled = v.GetBool("logging.audit_enabled")
	}
}

// initLogging points the process-wide logger at stderr or the configured
// rotating log file.
func (options *GlobalOptions) initLogging() error {
	if err := options.closeLogFile(); err != nil {
		return err
	}

	c := options.Conf
	if c.Logging.File == "" {
		logging.Init(c.Logging.Level, c.Logging.Format, os.Stderr)
		return nil
	}

	file := logging.NewRotatingFile(c.Logging.File, c.LogMaxSizeMB, c.Logging.MaxBackups, c.LogMaxAgeDays)
	options.logFile = file
	logging.Init(c.Logging.Level, c.Logging.Format, file)
	return nil
}

func (options *GlobalOptions) closeLogFile() error {
	if options.logFile == nil {
		return nil
	}
	err := options.logFile.Close()
	options.logFile = nil
	return err
}
