// colorslide is a sliding-token color puzzle for the terminal.
//
// Usage:
//
//	colorslide list                 - List level packs and their levels
//	colorslide play [level]         - Play, optionally starting at a level
//	colorslide check [file...]      - Validate and solve levels
//	colorslide solve <level>        - Print the shortest solution of a level
//	colorslide records [level]      - Show the best runs
//	colorslide serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search standard locations)
//	--db <path>         - Records database (default: ~/.colorslide/records.db)
//	--levels <dir>      - Directory of YAML levels, registered as the "custom" pack
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorslide/internal/config"
	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/puzzle/levels"
	"github.com/vovakirdan/colorslide/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string

	// Resolved by the root command before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorslide",
	Short: "Colorslide - slide colored tokens onto their goals",
	Long: `Colorslide is a terminal puzzle: every move slides all tokens one cell
in the same direction, and a level is solved when each token rests on the
goal of its color.

Available commands:
  list     - Show level packs and levels
  play     - Play in the terminal
  check    - Validate level files and prove them solvable
  solve    - Print the shortest solution of a level
  records  - View the best runs
  serve    - Start SSH server for remote play

Examples:
  colorslide list
  colorslide play
  colorslide play 3
  colorslide check ./my-levels/*.yaml
  colorslide serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of YAML levels (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration, applies flag overrides, builds the logger and
// registers the custom level pack.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.DBPath = config.ExpandHome(flagDBPath)
	}
	if flagLevelsDir != "" {
		cfg.LevelsDir = config.ExpandHome(flagLevelsDir)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorslide",
		Level:           level,
	})

	if cfg.LevelsDir != "" {
		levels.RegisterDir(levels.CustomPack, "Custom", cfg.LevelsDir, logger)
		logger.Debug("registered custom pack", "dir", cfg.LevelsDir)
	}
	return nil
}

// runtimeConfig builds the front-end settings for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:        width,
		ScreenH:        height,
		TickRate:       cfg.TickRate,
		CellWidth:      cfg.Theme.CellWidth,
		CompactOver:    cfg.Theme.CompactOver,
		SwipeThreshold: cfg.Input.SwipeThreshold,
	}
}

// openStore opens the records database from the resolved config.
func openStore() (*storage.Store, error) {
	return storage.Open(cfg.DBPath)
}

// resolveLevel finds a level by 1-based number or by ID.
func resolveLevel(lvls []*puzzle.Level, ref string) (int, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(lvls) {
			return 0, fmt.Errorf("level number %d out of range 1-%d", n, len(lvls))
		}
		return n - 1, nil
	}
	for i, lvl := range lvls {
		if strings.EqualFold(lvl.ID(), ref) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", levels.ErrLevelNotFound, ref)
}
