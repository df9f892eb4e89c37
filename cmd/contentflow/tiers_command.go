package main

import (
	"fmt"
	"strconv"

	"contentflow/config"

	"github.com/spf13/cobra"
)

func newTiersCommand(ctx *commandContext) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the effective tier chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if sample {
				fmt.Fprint(out, config.SampleTiers())
				return nil
			}
			_, chain, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(chain.Tiers))
			for i, t := range chain.Tiers {
				notify := "-"
				if t.Reject.Enabled {
					notify = t.Reject.NotifyRole
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					t.Name,
					t.Role,
					t.Prefix,
					string(t.Forward.Mode),
					strconv.FormatBool(t.Forward.ClearSource),
					notify,
					strconv.FormatBool(t.Restore),
				})
			}
			headers := []string{"#", "Tier", "Role", "Prefix", "Forward", "Clear Source", "Reject Notifies", "Restore"}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignRight}))
			fmt.Fprintf(out, "published prefix: %q\n", chain.PublishedPrefix)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "Print a sample tier file instead")
	return cmd
}
