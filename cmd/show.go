package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/decksmith/decksmith/internal/config"
	"github.com/decksmith/decksmith/internal/deck"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [deck_file]",
	Short: "Display a deck list grouped by section with colors and a mana curve",
	Long: `Show resolves a deck list against the catalog and displays it grouped by
section in the deck-builder order, with card names colored by their
deck-builder color identity and a mana curve for the main deck.

Examples:
  decksmith show my-deck.txt
  decksmith show --catalog ./catalog.toml my-deck.txt`,
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

		displayDeck(deck.Canonicalize(resolved))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func displayDeck(d *deck.Deck[*card.Card]) {
	width := terminalWidth()

	for _, s := range d.Sections() {
		fmt.Println(colorize.CyanString("%s", s.Label()) +
			colorize.HiBlackString(" (%d)", d.Count(s)))
		for _, e := range d.Entries(s) {
			line := fmt.Sprintf("%2d %s", e.Count, colorName(e.Card))
			if types := e.Card.TypeLine.Types; len(types) > 0 {
				line += colorize.HiBlackString("  %s · %d", types[0], e.Card.ManaValue)
			}
			fmt.Println(clampLine(line, width))
		}
		fmt.Println()
	}

	displayManaCurve(d)
}

// colorName colors a card name by its deck-builder color identity.
func colorName(c *card.Card) string {
	identity := c.DeckBuilderColorIdentity()
	if identity.IsEmpty() {
		return colorize.HiWhiteString("%s", c.Name)
	}
	if identity.Size() > 1 {
		return colorize.HiYellowString("%s", c.Name)
	}
	switch {
	case identity.Has(card.White):
		return colorize.YellowString("%s", c.Name)
	case identity.Has(card.Blue):
		return colorize.BlueString("%s", c.Name)
	case identity.Has(card.Black):
		return colorize.MagentaString("%s", c.Name)
	case identity.Has(card.Red):
		return colorize.RedString("%s", c.Name)
	default:
		return colorize.GreenString("%s", c.Name)
	}
}

// displayManaCurve prints one bar per mana value for the nonland cards of the
// main deck, shaded along a cool-to-hot gradient.
func displayManaCurve(d *deck.Deck[*card.Card]) {
	counts := make(map[int]int)
	maxValue, maxCount := 0, 0
	for _, e := range d.Entries(deck.MainDeck) {
		if e.Card.IsLand() {
			continue
		}
		counts[e.Card.ManaValue] += e.Count
		if e.Card.ManaValue > maxValue {
			maxValue = e.Card.ManaValue
		}
		if counts[e.Card.ManaValue] > maxCount {
			maxCount = counts[e.Card.ManaValue]
		}
	}
	if maxCount == 0 {
		return
	}

	fmt.Println(colorize.CyanString("Mana curve"))
	cool, _ := colorful.Hex("#4a90d9")
	hot, _ := colorful.Hex("#d94a4a")
	span := maxValue
	if span == 0 {
		span = 1
	}
	for value := 0; value <= maxValue; value++ {
		shade := cool.BlendLab(hot, float64(value)/float64(span)).Clamped()
		r, g, b := shade.RGB255()
		bar := strings.Repeat("█", counts[value])
		fmt.Printf("%2d \x1b[38;2;%d;%d;%dm%s\x1b[0m %d\n", value, r, g, b, bar, counts[value])
	}
}

// terminalWidth returns the terminal width, or 80 when stdout is not a
// terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// clampLine truncates a line to the terminal width, ignoring the fact that
// ANSI escapes are zero-width; colored lines are left a little short rather
// than wrapped.
func clampLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width])
}
