package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crate/internal/app"
	"crate/internal/config"
	crateerrors "crate/internal/errors"
	"crate/internal/logging"
)

const bannerFont = "cybermedium"

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile  string
	logLevel string
	verbose  bool
	noBanner bool

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "crate [remote]",
	Short: "An interactive client for the music catalog service",
	Long: `Crate logs in to a music catalog service and lets you search albums
and inspect their details from an interactive prompt.

Without an argument crate connects to the default server; pass "remote"
to connect to the remote server instead. Type "help" at the prompt for a
list of commands.`,
	ValidArgs:         []string{config.TargetRemote},
	Args:              cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
	RunE:              runClient,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/crate/config.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging (same as --log-level debug)")
	rootCmd.PersistentFlags().
		BoolVar(&noBanner, "no-banner", false, "Do not print the startup banner")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "crate"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read config file silently (ignore error if config file doesn't exist)
	_ = viper.ReadInConfig()
}

// setupApp loads the settings and initializes the application with
// dependency injection.
func setupApp(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return crateerrors.NewValidationError("log-level", logLevel, "one_of", err.Error())
	}

	opts := []app.Option{
		app.WithLogLevel(level),
		app.WithSettings(*settings),
		app.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	application, err = app.NewApp(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if path := viper.ConfigFileUsed(); path != "" {
		application.Logger.DebugContext(cmd.Context(), "Using config file", "path", path)
	}
	return nil
}

// runClient logs in and runs the command prompt until the operator quits.
func runClient(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	baseURL, err := application.Settings.BaseURL(target)
	if err != nil {
		return err
	}

	if application.Settings.Banner && !noBanner {
		fmt.Fprintln(out, figure.NewFigure("crate", bannerFont, true).String())
	}
	fmt.Fprintf(out, "Starting client for %s\n", baseURL)

	session, err := application.Authenticator.Authenticate(ctx, baseURL)
	if errors.Is(err, crateerrors.ErrLoginAborted) {
		application.Logger.DebugContext(ctx, "Login aborted", "reason", err)
		fmt.Fprintln(out, "Shutting down.")
		return nil
	}
	if crateerrors.IsFatal(err) {
		application.Logger.ErrorContext(ctx, "Cannot start the command loop", "baseURL", baseURL, "error", err)
		return err
	}
	if err != nil {
		return err
	}

	engine, err := application.NewShell(baseURL)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, `Ready to receive commands. Type "help" for a list of commands.`)
	return engine.Run(ctx, session)
}
