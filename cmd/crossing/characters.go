package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/game"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

// characterCellWidth is the horizontal space given to each character.
const characterCellWidth = 14

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Show the selectable characters",
	Long: `Draws every character the deluxe variant lets you pick, in the
order C/Tab cycles through them.`,
	Args: cobra.NoArgs,
	Run:  runCharacters,
}

func runCharacters(cmd *cobra.Command, _ []string) {
	sheet := game.DefaultSpriteSheet(logger)
	screen := core.NewScreen(len(game.Characters)*characterCellWidth, 5)

	for i, id := range game.Characters {
		x := i * characterCellWidth
		g, _ := sheet.Resolve(id)
		for row, art := range g.Rows {
			screen.DrawTextColor(x+(characterCellWidth-g.Width())/2, row, art, g.Fg)
		}
		name := strings.TrimPrefix(id.String(), "char-")
		screen.DrawTextColor(x+(characterCellWidth-len(name))/2, 4, name, core.ColorGray)
	}

	out := screen.String()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		out = tui.RenderScreen(screen)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
}
