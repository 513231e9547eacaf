package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/huehunt/internal/core"
	"github.com/vovakirdan/huehunt/internal/game"
)

var (
	flagLevelsMax    int
	flagLevelsSample bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty curve",
	Long: `Print grid size and lightness difference for each level.

With --sample, every level is also generated with the current seed and its
base and odd colors are shown, so a seed can be previewed before playing.

Examples:
  huehunt levels
  huehunt levels --max 40
  huehunt levels --sample --seed 42`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsMax, "max", 25, "Last level to show")
	levelsCmd.Flags().BoolVar(&flagLevelsSample, "sample", false, "Generate and show colors for each level")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelsMax < 1 {
		fmt.Fprintf(os.Stderr, "Error: --max must be at least 1, got %d\n", flagLevelsMax)
		os.Exit(1)
	}

	headers := []string{"Level", "Grid", "Delta"}
	var rng *rand.Rand
	if flagLevelsSample {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
		headers = append(headers, "Base", "Odd", "Swatch")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(levelRows(flagLevelsMax, rng)...)

	fmt.Println(t)
}

// levelRows returns one table row per level from 1 to last.
// A non-nil rng adds generated colors to every row.
func levelRows(last int, rng *rand.Rand) [][]string {
	rows := make([][]string, 0, last)
	for level := 1; level <= last; level++ {
		size := game.GridSize(level)
		row := []string{
			strconv.Itoa(level),
			fmt.Sprintf("%dx%d", size, size),
			fmt.Sprintf("%.1f", game.Delta(level)),
		}

		if rng != nil {
			l := game.Generate(level, rng)
			row = append(row, l.Base.String(), l.Target.String(), swatch(l.Base)+swatch(l.Target))
		}
		rows = append(rows, row)
	}
	return rows
}

// swatch renders a small block of the given color.
func swatch(c core.HSL) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
}
