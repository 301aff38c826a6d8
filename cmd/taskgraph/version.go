package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/taskgraph"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taskgraph version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskgraph %s (%s, %s/%s)\n",
				taskgraph.VersionTag(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
