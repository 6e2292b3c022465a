package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aretw0/noir"
)

var (
	verbose    bool
	readOnly   bool
	dataDir    string
	configPath string
	envFile    string

	cfg noir.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noir",
	Short: "A local-first daily journal with review reminders",
	Long: `Noir keeps one markdown note per day in a plain data directory,
together with review reminders, pasted images and settings.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = noir.LoadConfig(configPath, envFile)
		if err != nil {
			fatal("Failed to load config", err)
		}

		level, err := cfg.Level()
		if err != nil {
			fatal("Invalid configuration", err)
		}
		if verbose {
			level = slog.LevelDebug
		}

		logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Reject every write")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory (default $NOIR_DATA_DIR or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with NOIR_* overrides")
}

// openService resolves the data directory (flag, then config, then default)
// and opens the service over it.
func openService(opts ...noir.Option) *noir.Service {
	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		var err error
		if dir, err = noir.DefaultDataDir(); err != nil {
			fatal("Failed to locate data directory", err)
		}
	}

	c := cfg
	c.ReadOnly = c.ReadOnly || readOnly

	all := append([]noir.Option{noir.WithLogger(slog.Default())}, c.Options()...)
	all = append(all, opts...)
	svc, err := noir.New(dir, all...)
	if err != nil {
		fatal("Failed to open data directory", err)
	}
	return svc
}

// dateArg returns the date given on the command line, or today.
func dateArg(svc *noir.Service, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return svc.Today()
}

// monthFlags registers --year and --month (1-12) on cmd.
func monthFlags(cmd *cobra.Command, year, month *int) {
	cmd.Flags().IntVar(year, "year", 0, "Year (default current)")
	cmd.Flags().IntVar(month, "month", 0, "Month 1-12 (default current)")
}

// resolveMonth fills in the current year and month and returns the 0-based month.
func resolveMonth(year, month int) (int, int) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month - 1
}
