package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/readychina/internal/config"
	"github.com/abhisek/readychina/internal/content"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Browse the decision cards",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all decision cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-3s  %-24s  %s\n", "ID", "Title", "Description")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		cards := catalog.Cards()
		for _, c := range cards {
			desc := c.Description
			if len(desc) > 48 {
				desc = desc[:45] + "..."
			}
			fmt.Fprintf(out, "%-3s  %-24s  %s\n", c.ID, c.Title, desc)
		}

		fmt.Fprintf(out, "\n%d cards\n", len(cards))
		return nil
	},
}

var cardsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the China vs. US comparison behind a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		card, ok := catalog.Card(args[0])
		if !ok {
			return fmt.Errorf("no card with id %q", args[0])
		}
		d := catalog.Detail(card.ID)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s\n%s\n\n", card.Title, card.Description)
		fmt.Fprintf(out, "IN CHINA\n  %s\n\nVS\n\nIN THE US\n  %s\n\n", d.ChinaSide, d.USSide)
		fmt.Fprintf(out, "\"%s\"\n", d.Hook)
		return nil
	},
}

// loadCatalog reads the content override from config, or the built-in copy.
func loadCatalog() (*content.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	catalog, err := content.LoadFile(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return catalog, nil
}

func init() {
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsShowCmd)
}
