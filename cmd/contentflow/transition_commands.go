package main

import (
	"context"
	"fmt"

	"contentflow/internal/models"
	"contentflow/internal/services"

	"github.com/spf13/cobra"
)

type transitionFunc func(svc *services.ContentService, ctx context.Context, name string, actor models.Actor) (services.TransitionResult, error)

// newTransitionCommands exposes forward, reject and restore for operators
// working directly against the store.
func newTransitionCommands(ctx *commandContext) []*cobra.Command {
	defs := []struct {
		use   string
		short string
		run   transitionFunc
	}{
		{"forward <tier>", "Copy a tier's content to the next tier", (*services.ContentService).Forward},
		{"reject <tier>", "Clear a tier's content and notify the tier below", (*services.ContentService).Reject},
		{"restore <tier>", "Replace a tier's content with the published content", (*services.ContentService).Restore},
	}

	cmds := make([]*cobra.Command, 0, len(defs))
	for _, def := range defs {
		var operator string
		cmd := &cobra.Command{
			Use:   def.use,
			Short: def.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				rt, err := ctx.open(cmd.Context())
				if err != nil {
					return err
				}
				defer rt.close()

				actor := models.Actor{UID: "cli", Email: operator, Role: "operator"}
				res, err := def.run(rt.svc, cmd.Context(), args[0], actor)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s ok (operation %s)\n", res.Action, res.Source, res.OperationID)
				if res.Destination != "" {
					fmt.Fprintf(out, "destination: %s\n", res.Destination)
				}
				if len(res.Notified) > 0 {
					fmt.Fprintf(out, "notified: %v\n", res.Notified)
				}
				if res.NotifyError != "" {
					fmt.Fprintf(out, "notification failed: %s\n", res.NotifyError)
				}
				return nil
			},
		}
		cmd.Flags().StringVar(&operator, "as", "", "Email recorded as the operator in logs")
		cmds = append(cmds, cmd)
	}
	return cmds
}
