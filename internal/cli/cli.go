package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/buildinfo"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "platemap"

	// configFile is the file name looked up in the config directory.
	configFile = "config.toml"
)

// LogInfo is the starting log level used by main.go; setup adjusts it from
// the config and --verbose.
const LogInfo = log.InfoLevel

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        Config
	configPath string
	sizeFlag   int
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Platemap maps, annotates and randomizes multi-well plates",
		Long: `Platemap works with 24, 48, 96, 384 and 1536-well plates: it converts
between well indices and labels, parses and writes plate-map CSV and Excel
files, and randomizes annotated well layouts.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().IntVarP(&c.sizeFlag, "size", "s", int(plate.Size96), "plate size (24, 48, 96, 384, 1536)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/platemap/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.labelCommand())
	root.AddCommand(c.indexCommand())
	root.AddCommand(c.wellsCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.randomizeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.annotateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, settles the log level and attaches the logger to
// the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("size") {
		cfg.PlateSize = c.sizeFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := log.ParseLevel(cfg.LogLevel)
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	c.Logger.Debug("Starting", "build", buildinfo.String())
	if c.configPath != "" {
		c.Logger.Debug("Loaded config", "path", c.configPath)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// size returns the plate size from flags or config.
func (c *CLI) size() plate.Size {
	return plate.Size(c.cfg.PlateSize)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/platemap/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
