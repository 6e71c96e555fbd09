package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/yscl-lang/go-yscl"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("yscl")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the settings shared by all subcommands. Values come from
// the persistent flags, falling back to the config file for flags that were
// not given.
type options struct {
	configPath string
	logPath    string
	verbosity  int
	maxDepth   int
	format     string // Default output format from the config file.
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "yscl",
		Short:        "Parse and check YSCL configuration files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", defaultConfigFile, "TOML settings file")
	flags.StringVar(&opts.logPath, "log", "", "log file (default stderr)")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.IntVar(&opts.maxDepth, "max-depth", yscl.DefaultMaxDepth, "maximum nesting of lists and maps, 0 for no limit")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolve merges the config file into opts and sets up logging.
func (o *options) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := loadConfig(o.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}

	if !flags.Changed("max-depth") && cfg.MaxDepth != nil {
		o.maxDepth = *cfg.MaxDepth
	}
	if !flags.Changed("verbose") {
		o.verbosity = cfg.Verbosity
	}
	if !flags.Changed("log") && cfg.Log != "" {
		o.logPath = cfg.Log
	}
	o.format = cfg.Format

	var logPath *string
	if o.logPath != "" {
		logPath = &o.logPath
	}
	commonlog.Configure(o.verbosity, logPath)

	if cfg.path != "" {
		log.Infof("loaded settings from %s", cfg.path)
	}
	log.Debugf("max depth %d, verbosity %d", o.maxDepth, o.verbosity)
	return nil
}

// parseOptions returns the parser options selected on the command line.
func (o *options) parseOptions() []yscl.Option {
	return []yscl.Option{yscl.WithMaxDepth(o.maxDepth)}
}
