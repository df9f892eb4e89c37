package main

import (
	"fmt"
	"strconv"

	"contentflow/internal/tier"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the content held by every tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.open(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			chain := rt.svc.Chain()
			names := make([]string, 0, len(chain.Tiers)+1)
			for _, t := range chain.Tiers {
				names = append(names, t.Name)
			}
			names = append(names, tier.PublishedName)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				c, err := rt.svc.AllContent(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				next, mode := "-", "-"
				if dst, err := chain.Destination(name); err == nil {
					next = dst.Name
					t, _, _ := chain.Lookup(name)
					mode = string(t.Forward.Mode)
					if t.Forward.ClearSource {
						mode += "+clear"
					}
				}
				rows = append(rows, []string{
					name,
					next,
					mode,
					strconv.Itoa(len(c.GalleryImages)),
					strconv.Itoa(len(c.NewsItems)),
					strconv.FormatBool(c.Toggle),
					strconv.Itoa(len(c.Banner)),
				})
			}

			headers := []string{"Tier", "Forwards To", "Mode", "Gallery", "News", "Toggle", "Banner"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}
}
