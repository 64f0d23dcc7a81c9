package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "decksmith",
	Short: "Tool for formatting and inspecting Arena deck lists",
	Long: `Decksmith is a command-line tool for parsing, normalizing, and inspecting
deck lists in the MTG Arena text format. It resolves card references against a
local card catalog and writes decks back in the canonical deck-builder order.`,
}

func init() {
	RootCmd.PersistentFlags().String("catalog", "", "Path to the card catalog file (overrides config)")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
