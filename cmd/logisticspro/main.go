package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// annotationTUI marks commands that take over the terminal. Their logs go to
// the configured log file or nowhere.
const annotationTUI = "tui"

// cli carries the state shared by all commands of one invocation.
type cli struct {
	v       *viper.Viper
	cfg     *config.Config
	logFile *os.File
	cfgFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "logisticspro",
		Short: "📦 Procurement and logistics dashboard",
		Long: `logisticspro: a terminal dashboard for a China procurement and logistics agency.

Browse clients, suppliers, orders and payments in Russian, English or Chinese,
with amounts shown in rubles, dollars or yuan.`,
		Annotations:        map[string]string{annotationTUI: "true"},
		PersistentPreRunE:  c.initConfig,
		PersistentPostRunE: c.cleanup,
		SilenceUsage:       true,
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: $HOME/.config/logisticspro/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (console, json)")
	rootCmd.PersistentFlags().String("prefs-backend", config.DefaultBackend, "preference store ("+strings.Join(config.Backends(), ", ")+")")

	_ = c.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = c.v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = c.v.BindPFlag(config.KeyPrefsBackend, rootCmd.PersistentFlags().Lookup("prefs-backend"))

	dash := dashboardCmd(c)
	rootCmd.Flags().AddFlagSet(dash.Flags())
	rootCmd.RunE = dash.RunE

	rootCmd.AddCommand(dash)
	rootCmd.AddCommand(renderCmd(c))
	rootCmd.AddCommand(prefsCmd(c))
	rootCmd.AddCommand(fixturesCmd(c))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) initConfig(cmd *cobra.Command, _ []string) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		if dir, err := config.ConfigDir(); err == nil {
			c.v.AddConfigPath(dir)
		}
		c.v.AddConfigPath(".")
		c.v.SetConfigName("config")
		c.v.SetConfigType("yaml")
	}

	// Environment variables
	c.v.SetEnvPrefix("LOGISTICSPRO")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	c.cfg = cfg

	if err := c.setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	common.LogDebug("Configuration loaded", common.Fields{
		"config":        c.v.ConfigFileUsed(),
		"prefs_backend": cfg.Preferences.Backend,
	})
	return nil
}

func (c *cli) setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(c.cfg.Logging.Level)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case c.cfg.Logging.File != "":
		if err := os.MkdirAll(filepath.Dir(c.cfg.Logging.File), 0750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(c.cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		c.logFile = f
		w = f
	case cmd.Annotations[annotationTUI] != "":
		w = io.Discard
	}

	return common.SetupLogger(w, level, c.cfg.Logging.Format)
}

func (c *cli) cleanup(_ *cobra.Command, _ []string) error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "logisticspro %s\n", version)
		},
	}
}
