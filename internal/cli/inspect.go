package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// inspectCommand shows how each family is rendered.
func (c *CLI) inspectCommand() *cobra.Command {
	var in inputOpts

	cmd := &cobra.Command{
		Use:   "inspect [family...]",
		Short: "Show the style fragment and query segment for each family",
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := loadFamilies(cmd.Context(), args, in)
			if err != nil {
				return err
			}
			url, err := compile(cmd.Context(), families)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, familyTable(families))
			for _, f := range families {
				if len(f.Italics) > 0 && len(f.Weights) > 0 {
					printWarning(out, "%s: weights are ignored because italics are set", f.Name)
				}
			}
			printKeyValue(out, "URL", StyleLink.Render(url))
			return nil
		},
	}

	in.register(cmd)
	return cmd
}
