package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show your want-to-go list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WantList
			if err := client.Get("/api/v1/wantlist", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <place>",
		Short: "Add a destination to your want-to-go list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"place": args[0]}
			var result WantList

			if err := client.Post("/api/v1/wantlist", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Added %s.", args[0]))
			out.Print(result)
			return nil
		},
	}
}

func newDestinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "List the destination catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Destination
			if err := client.Get("/api/v1/destinations", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
