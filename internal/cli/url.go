package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontlink/pkg/fonts"
)

// urlCommand prints the compiled stylesheet URL.
func (c *CLI) urlCommand() *cobra.Command {
	var in inputOpts

	cmd := &cobra.Command{
		Use:   "url [family...]",
		Short: "Print the Google Fonts URL for the given families",
		Long: `Print the Google Fonts CSS2 URL for a list of font families.

Families are given in CSS2 syntax, or read from a manifest:

  fontlink url "Open Sans:wght@400;700" "Roboto:ital,wght@0,400;1,700"
  fontlink url -m fonts.toml

Without arguments or --manifest, fonts.toml, fonts.yaml, fonts.yml or
fonts.json in the current directory is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := loadFamilies(cmd.Context(), args, in)
			if err != nil {
				return err
			}
			url, err := compile(cmd.Context(), families)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	in.register(cmd)
	return cmd
}

// tagCommand prints the stylesheet <link> element.
func (c *CLI) tagCommand() *cobra.Command {
	var (
		in         inputOpts
		preconnect bool
	)

	cmd := &cobra.Command{
		Use:   "tag [family...]",
		Short: "Print an HTML <link> tag for the given families",
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
			if preconnect {
				fmt.Fprintln(out, fonts.PreconnectTags())
			}
			fmt.Fprintln(out, fonts.LinkTag(url))
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&preconnect, "preconnect", false, "also print preconnect hints for the font origins")
	return cmd
}
