package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/zjrosen/prism/named"
)

var nameCmd = &cobra.Command{
	Use:   "name [hex]",
	Short: "Resolve a hex colour to its CSS name",
	Long:  `Name looks a colour up in the CSS named-colour table, falling back to the perceptually nearest name by CIE Lab distance.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runName,
}

func init() {
	rootCmd.AddCommand(nameCmd)
}

func runName(cmd *cobra.Command, args []string) error {
	c, err := colorful.Hex(args[0])
	if err != nil {
		return fmt.Errorf("parsing colour %q: %w", args[0], err)
	}

	swatch := func(hex string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	}

	if name, ok := named.NameOf(c); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch(c.Hex()), name)
		return nil
	}

	name, nearest := named.Nearest(c)
	fmt.Fprintf(cmd.OutOrStdout(), "%s no exact match, nearest is %s (%s) %s\n",
		swatch(c.Hex()), name, nearest.Hex(), swatch(nearest.Hex()))
	return nil
}
