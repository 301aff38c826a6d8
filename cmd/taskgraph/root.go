package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/taskgraph"
	"github.com/iw2rmb/taskgraph/internal/config"
	"github.com/iw2rmb/taskgraph/internal/logging"
)

type globalFlags struct {
	configPath string
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "taskgraph",
		Short:         "Draw task graphs in the terminal",
		Long:          "taskgraph is a small diagram editor: add nodes, connect them, drag and rename them.",
		Version:       taskgraph.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, flags)
		},
	}
	root.SetVersionTemplate("taskgraph {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/taskgraph/config.toml)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		runCmd(flags),
		snapshotCmd(flags),
		versionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger for a command.
func setup(flags *globalFlags) (*config.Config, *zap.Logger, error) {
	path := flags.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}

	logger, err := logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
		Debug: flags.debug,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("config loaded", zap.String("path", path))
	return cfg, logger, nil
}
