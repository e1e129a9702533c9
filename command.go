package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/NickyBoy89/ifacereport/config"
	"github.com/NickyBoy89/ifacereport/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Command-line options, these override any values from a config file when set
type options struct {
	configPath    string
	interfaceName string
	format        string
	verbose       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ifacereport [file.java]",
		Short: "Print the structure of a Java interface",
		Long: "Parses a Java source file and prints the name, member count, and every method\n" +
			"of one of its interfaces, with parameters, thrown exceptions and comments.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), conf, cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with the source, interface and format to use")
	flags.StringVarP(&opts.interfaceName, "interface", "i", "", "Name of the interface to report on, defaults to the file's name")
	flags.StringVarP(&opts.format, "format", "f", report.FormatText, fmt.Sprintf("Output format, one of %v", report.Formats))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Additional debug info")

	root.AddCommand(&cobra.Command{
		Use:   "watch [file.java]",
		Short: "Print the report again every time the source file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchReport(ctx, conf, cmd.OutOrStdout())
		},
	})

	return root
}

// resolve builds the configuration for a run, starting from the config file
// if there is one, and applying the arguments and flags on top of it
func (opts *options) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	conf := config.Default()
	if opts.configPath != "" {
		var err error
		conf, err = config.Load(opts.configPath)
		if err != nil {
			return conf, err
		}
	}

	if len(args) > 0 {
		conf.Source = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("interface") {
		conf.Interface = opts.interfaceName
	}
	if flags.Changed("format") {
		conf.Format = opts.format
	}
	if flags.Changed("verbose") {
		conf.Verbose = opts.verbose
	}

	if conf.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	return conf.Resolve()
}
