package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/ftype/internal/app"
	"github.com/dotcommander/ftype/internal/config"
)

// Flag variables for Cobra binding (required for PersistentFlags).
var (
	cfgFile string
	verbose bool
	dryRun  bool
	strict  bool
	workDir string
	envSets []string
	envDels []string
)

// launcher starts resolved commands; replaced in tests.
var launcher app.Launcher = app.ExecLauncher{}

// fatal logs a diagnostic and exits; replaced in tests.
var fatal = func(msg any, keyvals ...any) {
	app.NewLogger(false).Fatal(msg, keyvals...)
}

var rootCmd = &cobra.Command{
	Use:   "ftype <program> [args...]",
	Short: "Run a file through its registered open command",
	Long: `ftype looks up the shell "open" command registered for the program's
file extension and runs it exactly as the shell would when the file is
double-clicked, substituting %1, %*, %2..%9 and %w with this invocation.

Examples:
  ftype script.py --flag value
  ftype --dry-run notes.txt
  ftype --cwd C:\work --env MODE=dev report.xlsx
  ftype show notes.txt build.ps1`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := buildInvocation(args, workDir, envSets, envDels)
		if err != nil {
			return err
		}
		return runLaunch(cmd.Context(), inv)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		os.Exit(exitErr.Code)
	}
	printStyledError(err)
	os.Exit(1)
}

func init() {
	// Enable custom styled error output
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Everything after the program belongs to the program.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/ftype/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "abort immediately on unsupported placeholders")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the resolved command instead of running it")
	rootCmd.Flags().StringVarP(&workDir, "cwd", "C", "", "working directory for the launched command")
	rootCmd.Flags().StringArrayVarP(&envSets, "env", "e", nil, "set an environment variable (NAME=VALUE, repeatable)")
	rootCmd.Flags().StringArrayVarP(&envDels, "unset", "u", nil, "remove an environment variable (repeatable)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug.strict_placeholders", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "ftype"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	viper.SetEnvPrefix("FTYPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return nil
}

// createContext creates a context with timeout for CLI operations.
// If timeout is 0, returns a cancelable context without timeout.
func createContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// buildInvocation turns command-line arguments and override flags into an Invocation.
func buildInvocation(args []string, dir string, sets, unsets []string) (app.Invocation, error) {
	if len(args) == 0 {
		return app.Invocation{}, fmt.Errorf("requires a program path")
	}
	inv := app.NewInvocation(args[0], args[1:]...)
	inv.Dir = dir

	if len(sets)+len(unsets) > 0 {
		inv.Env = make(map[string]app.EnvOverride, len(sets)+len(unsets))
	}
	for _, kv := range sets {
		name, override, ok := app.ParseEnvAssignment(kv)
		if !ok {
			return app.Invocation{}, fmt.Errorf("invalid argument %q for --env: expected NAME=VALUE", kv)
		}
		inv.Env[name] = override
	}
	for _, name := range unsets {
		if name == "" || strings.Contains(name, "=") {
			return app.Invocation{}, fmt.Errorf("invalid argument %q for --unset: expected NAME", name)
		}
		inv.Env[name] = app.UnsetEnv()
	}
	if err := app.ValidateEnvOverrides(inv.Env); err != nil {
		return app.Invocation{}, err
	}
	return inv, nil
}

// loadRuntime loads config and builds the logger and resolver shared by commands.
func loadRuntime() (*config.Config, app.Logger, *app.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := app.NewLogger(cfg.Verbose)
	store := app.DefaultStore(cfg.AssociationTable())
	return cfg, logger, app.NewResolver(store, logger), nil
}

// runLaunch resolves inv and runs the resulting command.
func runLaunch(parent context.Context, inv app.Invocation) error {
	cfg, logger, resolver, err := loadRuntime()
	if err != nil {
		return err
	}

	rc, err := resolver.Resolve(inv)
	if err != nil {
		stopOnUnsupported(cfg, err)
		return fmt.Errorf("failed to resolve %s: %w", inv.Program, err)
	}

	if cfg.DryRun {
		fmt.Println(rc.String())
		recordHistory(cfg, logger, inv, rc, 0, true)
		return nil
	}

	ctx, cancel := createContext(parent, 0)
	defer cancel()

	logger.Info("launching", "command", rc.String())
	code, err := launcher.Launch(ctx, rc)
	recordHistory(cfg, logger, inv, rc, code, false)
	if err != nil {
		return err
	}
	if !code.IsSuccess() {
		return &ExitError{Code: 1}
	}
	return nil
}

// stopOnUnsupported terminates with a diagnostic when strict placeholder
// checking is on and err is an unsupported placeholder.
func stopOnUnsupported(cfg *config.Config, err error) {
	var upe *app.UnsupportedPlaceholderError
	if !cfg.Debug.StrictPlaceholders || !errors.As(err, &upe) {
		return
	}
	fatal("unsupported shell substitution", "placeholder", fmt.Sprintf("%%%c", upe.Designator), "err", err)
}

// recordHistory saves the launch, warning on failure.
func recordHistory(cfg *config.Config, logger app.Logger, inv app.Invocation, rc *app.ResolvedCommand, code app.ExitCode, dry bool) {
	if !cfg.History.Enabled {
		return
	}
	entry := app.NewLaunchHistoryEntry(inv, rc, code)
	entry.DryRun = dry
	if err := app.NewFileHistoryStore(cfg.History.Path).Save(entry); err != nil {
		logger.Warn("failed to save to history", "err", err)
	}
}
