package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/tui"
	"github.com/bestpick/cardnav/internal/validate"
	"github.com/bestpick/cardnav/internal/viewport"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile  string
	verbose     bool
	watch       bool
	logFile     string
	renderWidth int
	expanded    bool
	scanDir     string
	force       bool

	rootCmd = &cobra.Command{
		Use:   "cardnav",
		Short: "An animated card navigation header for the terminal.",
		Long:  `cardnav renders a collapsible navigation bar whose menu opens into a panel of link cards. The panel grows to fit its cards, the cards cascade in, and the layout follows the terminal as it is resized.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for render output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().
		StringVarP(&configFile, "config", "c", "", "Nav config file (.yaml, .yml, .json or .toml). Defaults to ./cardnav.* or the user config dir, then the built-in cards")

	runCmd.Flags().BoolVar(&watch, "watch", false, "Reload the config file when it changes")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the TUI is running")

	renderCmd.Flags().IntVar(&renderWidth, "width", viewport.DefaultBreakpoint, "Terminal width to render for")
	renderCmd.Flags().BoolVar(&expanded, "expanded", false, "Render the menu fully open")

	validateCmd.Flags().StringVar(&scanDir, "dir", "", "Validate every nav config (cardnav.* or *.cardnav.*) under this directory")

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

func loadConfig() *config.Config {
	if configFile == "" {
		configFile = config.Locate()
	}
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		logrus.Fatal(err)
	}
	return cfg
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive nav",
	Long:  "Open the nav full screen. Toggle the menu with Enter, Space or a click on the trigger; click a link to see where it goes.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if watch && configFile == "" {
			logrus.Fatal("--watch requires --config")
		}
		cfg := loadConfig()

		opts := tui.Options{}
		if watch {
			opts.WatchPath = cfg.Path
		}
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				logrus.Fatalf("Unable to open log file: %v", err)
			}
			defer f.Close()
			opts.LogOutput = f
		}

		if err := tui.Run(cmd.Context(), cfg, opts); err != nil {
			logrus.Fatalf("TUI failed: %v", err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one frame of the nav",
	Long:  "Print the nav once to stdout, collapsed or fully expanded, as it would look at the given width.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validate.Var(renderWidth, "gt=0"); err != nil {
			logrus.Fatalf("Invalid --width %d: must be positive", renderWidth)
		}
		cfg := loadConfig()
		size := viewport.Size{Width: renderWidth, Height: 0}
		fmt.Fprintln(os.Stdout, tui.Snapshot(cfg, size, expanded))
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a nav config file",
	Long:  "Load and validate a nav config file and print a summary of the cards it defines. With --dir, every nav config under the directory is checked.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if scanDir != "" {
			validateDir(cmd.Context(), scanDir)
			return
		}
		if configFile == "" {
			logrus.Fatal("validate requires --config or --dir")
		}
		cfg := loadConfig()
		printSummary(cfg)
	},
}

func validateDir(ctx context.Context, dir string) {
	paths, err := config.Discover(ctx, dir)
	if err != nil {
		logrus.Fatal(err)
	}
	if len(paths) == 0 {
		logrus.Fatalf("No nav configs found under %s", dir)
	}
	failed := 0
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "%s: %v\n", p, err)
			continue
		}
		printSummary(cfg)
	}
	if failed > 0 {
		logrus.Fatalf("%d of %d nav configs are invalid", failed, len(paths))
	}
}

func printSummary(cfg *config.Config) {
	fmt.Fprintf(os.Stdout, "%s: ok\n", cfg.Path)
	fmt.Fprintf(os.Stdout, "brand: %s %s\n", cfg.Logo, cfg.BrandText)
	fmt.Fprintf(os.Stdout, "ease: %s, breakpoint: %d\n", cfg.Ease, cfg.Layout.Breakpoint)
	for i, card := range cfg.Items {
		note := ""
		if i >= config.MaxCards {
			note = " (not shown)"
		}
		fmt.Fprintf(os.Stdout, "  %d. %s: %d links%s\n", i+1, card.Label, len(card.Links), note)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the built-in nav config to a file",
	Long:  "Write the built-in three-card config to PATH (default " + config.DefaultConfigName + ") as a starting point. The format follows the extension: .json, .yaml or .yml.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.DefaultConfigName
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Save(config.Default(), path, force); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	},
}
