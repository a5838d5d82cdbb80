package cmd

import (
	"github.com/akave-ai/msgdecode/internal/handler"
	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs"
	_ "github.com/akave-ai/msgdecode/internal/infrastructure/inputs/fileinput"
	"github.com/spf13/cobra"
)

func newInputsCmd() *cobra.Command {
	var asJSON, namesOnly bool

	inputsCmd := &cobra.Command{
		Use:   "inputs [type]",
		Short: "List input types and their configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &handler.InputHandler{
				Registry: inputs.GlobalRegistry,
				Out:      cmd.OutOrStdout(),
				JSON:     asJSON,
			}
			switch {
			case len(args) == 1:
				return h.GetTypeInfo(args[0])
			case namesOnly:
				return h.ListTypes()
			default:
				return h.GetAllTypesInfo()
			}
		},
	}
	inputsCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	inputsCmd.Flags().BoolVar(&namesOnly, "names", false, "print type names only")
	return inputsCmd
}
