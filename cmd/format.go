package cmd

import (
	"fmt"
	"os"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/decksmith/decksmith/internal/config"
	"github.com/decksmith/decksmith/internal/deck"
	"github.com/spf13/cobra"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format [deck_file]",
	Short: "Normalize an Arena deck list",
	Long: `Format reads an Arena deck list, resolves every card against the catalog,
and writes the deck back with each section sorted into the canonical
deck-builder order.

With --bo1 the sideboard is additionally reordered so that cards that matter
in best-of-one queues (Lessons and cards that fetch themselves from outside
the game) come first and stay within the visible sideboard slots.

Examples:
  decksmith format my-deck.txt
  decksmith format --bo1 my-deck.txt
  decksmith format -o normalized.txt my-deck.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		catalogPath, err := config.GetCatalogPath(catalogFlag)
		if err != nil {
			return err
		}

		catalog, err := card.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("error loading catalog: %v", err)
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("error opening deck list: %v", err)
		}
		defer file.Close()

		raw, err := deck.ReadEntries(file)
		if err != nil {
			return fmt.Errorf("error reading deck list: %v", err)
		}

		resolved, err := deck.Resolve(raw, catalog)
		if err != nil {
			return fmt.Errorf("error resolving deck list: %v", err)
		}

		resolved = deck.Canonicalize(resolved)

		bo1, err := bestOfOneEnabled(cmd)
		if err != nil {
			return err
		}
		if bo1 {
			resolved = deck.PrioritizeSideboard(resolved)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return deck.Write(os.Stdout, resolved)
		}

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating output file: %v", err)
		}
		defer out.Close()

		return deck.Write(out, resolved)
	},
}

// bestOfOneEnabled resolves the --bo1 flag, falling back to the configured
// default when the flag was not given.
func bestOfOneEnabled(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Changed("bo1") {
		return cmd.Flags().GetBool("bo1")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return false, fmt.Errorf("error loading config: %v", err)
	}
	return cfg.BestOfOne, nil
}

func init() {
	RootCmd.AddCommand(formatCmd)

	formatCmd.Flags().Bool("bo1", false, "Reorder the sideboard for best-of-one queues")
	formatCmd.Flags().StringP("output", "o", "", "Write the normalized deck list to a file instead of stdout")
}
