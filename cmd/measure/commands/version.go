package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/measure/display"
	"github.com/teranos/measure/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show measure version information",
		Long:  `Display version, build time, commit hash, and platform information for the measure binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if format := display.OutputFormat(cmd, display.FormatText); format != display.FormatText {
				return display.Output(out, info, format)
			}
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Channel: %s\n", info.Channel())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
