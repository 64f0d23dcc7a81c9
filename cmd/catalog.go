package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/decksmith/decksmith/internal/config"
	"github.com/decksmith/decksmith/internal/deck"
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local card catalog",
	Long:  `Commands for managing the local card catalog that deck lists are resolved against.`,
}

// catalogLsCmd represents the catalog ls command
var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the catalog in collection view order",
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

		cards := catalog.Cards()
		if len(cards) == 0 {
			fmt.Println("The catalog is empty.")
			fmt.Println("You can add cards by editing:", catalogPath)
			return nil
		}

		slices.SortFunc(cards, deck.ComparePrintings)
		for _, c := range cards {
			fmt.Printf("%-32s %s  %d %s\n", c.Entry(), c.Colors, c.ManaValue, strings.Join(c.TypeLine.Types, " "))
		}
		return nil
	},
}

// catalogPathCmd represents the catalog path command
var catalogPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		catalogPath, err := config.GetCatalogPath(catalogFlag)
		if err != nil {
			return err
		}
		fmt.Println(catalogPath)
		return nil
	},
}

// catalogSetDefaultCmd represents the catalog set-default command
var catalogSetDefaultCmd = &cobra.Command{
	Use:   "set-default [path]",
	Short: "Set the default catalog file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath := args[0]

		// Try to load the catalog to make sure it's valid
		_, err := card.LoadCatalog(catalogPath)
		if err != nil {
			fmt.Printf("Error: Not a valid catalog - %v\n", err)
			return
		}

		// Set as default
		err = config.SetCatalogPath(catalogPath)
		if err != nil {
			fmt.Printf("Error setting default catalog: %v\n", err)
			return
		}

		fmt.Printf("Default catalog set to: %s\n", catalogPath)
	},
}

// catalogInitCmd represents the catalog init command
var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a starter catalog",
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath := config.GetDefaultCatalogPath()

		// Create the catalog directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(catalogPath), 0755); err != nil {
			fmt.Printf("Error creating catalog directory: %v\n", err)
			return
		}

		if _, err := os.Stat(catalogPath); err == nil {
			fmt.Println("Catalog already exists at:", catalogPath)
		} else {
			if err := os.WriteFile(catalogPath, []byte(starterCatalog), 0644); err != nil {
				fmt.Printf("Error writing starter catalog: %v\n", err)
				return
			}
			fmt.Println("Starter catalog created at:", catalogPath)
			fmt.Println("You can add cards by editing this file.")
		}

		// Initialize config
		_, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

const starterCatalog = `# decksmith card catalog
#
# Each [[card]] block is one printing. Unqualified deck-list entries resolve
# to the first printing of a name in set/collector-number order.

[[card]]
name = "Plains"
mana_value = 0
color_identity = ["W"]
types = ["Land"]
subtypes = ["Plains"]
set = "ANA"
collector_number = "1"

[[card]]
name = "Island"
mana_value = 0
color_identity = ["U"]
types = ["Land"]
subtypes = ["Island"]
set = "ANA"
collector_number = "2"

[[card]]
name = "Swamp"
mana_value = 0
color_identity = ["B"]
types = ["Land"]
subtypes = ["Swamp"]
set = "ANA"
collector_number = "3"

[[card]]
name = "Mountain"
mana_value = 0
color_identity = ["R"]
types = ["Land"]
subtypes = ["Mountain"]
set = "ANA"
collector_number = "4"

[[card]]
name = "Forest"
mana_value = 0
color_identity = ["G"]
types = ["Land"]
subtypes = ["Forest"]
set = "ANA"
collector_number = "5"

[[card]]
name = "Shock"
mana_value = 1
colors = ["R"]
color_identity = ["R"]
types = ["Instant"]
set = "M21"
collector_number = "159"
oracle_text = "Shock deals 2 damage to any target."
`

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogLsCmd)
	catalogCmd.AddCommand(catalogPathCmd)
	catalogCmd.AddCommand(catalogSetDefaultCmd)
	catalogCmd.AddCommand(catalogInitCmd)
}
