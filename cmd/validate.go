package cmd

import (
	"fmt"
	"os"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/decksmith/decksmith/internal/config"
	"github.com/decksmith/decksmith/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck_file]",
	Short: "Validate an Arena deck list",
	Long: `Validate checks that a deck list parses, that every card reference resolves
against the catalog, and reports warnings for deck construction problems such
as undersized main decks or too many copies of a card.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		// Check if path exists
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck list not found: %s", deckPath)
		}

		catalogFlag, _ := cmd.Flags().GetString("catalog")
		catalogPath, err := config.GetCatalogPath(catalogFlag)
		if err != nil {
			return err
		}

		catalog, err := card.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("error loading catalog: %v", err)
		}

		// Create validator and run validation
		v := validator.NewValidator(deckPath, catalog)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Deck list '%s' is valid.\n", deckPath)
		} else {
			fmt.Printf("❌ Deck list '%s' has %d errors:\n", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
