package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftviz/internal/config"
)

const envPrefix = "FFTVIZ"

// app carries the state shared by all subcommands of one root command.
type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "fftviz",
		Short: "Render the centered log-magnitude spectrum of an image",
		Long: `fftviz decodes an image, converts it to grayscale, downscales it and
renders the centered, log-scaled and contrast-normalized magnitude of its
2-D Fourier transform as an 8-bit image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "",
		"config file (default is fftviz.yaml in ., ./configs or $HOME/.config/fftviz)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "human-readable debug logging")

	mustBindFlags(a.v, pf, map[string]string{"log_level": "log-level"})

	cmd.AddCommand(newRunCmd(a), newConfigCmd(a), newListCmd())

	return cmd
}

// initialize reads the config file and environment, then builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.readConfig(); err != nil {
		return err
	}

	logger, err := newLogger(a.v.GetString("log_level"), a.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}

	return nil
}

func (a *app) readConfig() error {
	v := a.v

	config.SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}

		return nil
	}

	v.SetConfigName("fftviz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "fftviz"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// bindFlags binds each config key to the flag of the given name, so a flag
// set on the command line overrides the file and environment.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	var lastErr error

	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			lastErr = fmt.Errorf("unknown flag %q for key %q", name, key)
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// mustBindFlags is bindFlags for flag sets built in code; a failure there is
// a programming error.
func mustBindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	if err := bindFlags(v, fs, keys); err != nil {
		panic(fmt.Sprintf("fftviz: bind flags: %v", err))
	}
}
