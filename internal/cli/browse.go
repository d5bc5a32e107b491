package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

func (c *CLI) browseCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "browse [n]",
		Short: "Step through solution paths interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sols, err := c.loadSolutions(ctx, input)
			if err != nil {
				return err
			}
			if len(sols) == 0 {
				return apperr.New(apperr.ErrCodeNotFound, "no solutions to browse")
			}

			start := 0
			if len(args) == 1 {
				if start, err = apperr.ParseSolutionIndex(args[0], len(sols)); err != nil {
					return err
				}
			}

			p := tea.NewProgram(NewBrowseModel(sols, start), tea.WithContext(ctx), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "browse solutions from a JSON file written by solve -f json")
	return cmd
}
