package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that YSCL files parse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			failed := 0
			for _, name := range args {
				if name == "-" {
					name = stdinName
				}
				if _, err := parseInput(cmd.InOrStdin(), name, opts); err != nil {
					fmt.Fprintln(out, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", name)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
