package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Pankaj-Bori/mybank-management-system/internal/app"
	"github.com/Pankaj-Bori/mybank-management-system/internal/config"
	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/errhandler"
)

// appState is filled in by the root command's pre-run, after flags are
// parsed, and read by the subcommands.
type appState struct {
	cfgFile string
	app     *app.App
	cleanup func()
}

func (s *appState) close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	state := &appState{}
	defer state.close()

	rootCmd := NewRootCmd(state, migrations)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		state.close()
		errhandler.HandleError(err)
	}
}

func NewRootCmd(state *appState, migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mybank",
		Short: "mybank is an in-memory banking console",
		Long: `mybank is an in-memory banking console.

Accounts live for the lifetime of the process. The console starts with a
demo account (1234567890 / mybank@123) and a reserve account (999999).
Statements can be exported to a local SQLite file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(state.cfgFile)
			if err != nil {
				return err
			}

			application, cleanup, err := app.NewApp(cfg, migrations, os.Stderr)
			if err != nil {
				return err
			}
			state.app = application
			state.cleanup = cleanup
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newConsoleRunner(state.app).Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewConsoleCmd(state))
	rootCmd.AddCommand(NewRunCmd(state))
	rootCmd.AddCommand(NewInfoCmd(state))

	return rootCmd
}

func initConfig(cfgFile string) (*config.Config, error) {
	v := viper.GetViper()
	for key, val := range config.Defaults() {
		v.SetDefault(key, val)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigName+".yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
