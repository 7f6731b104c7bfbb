package main

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

const progressBarWidth = 30

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#67AEE6"))
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show XP total, level and per-source breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			breakdown, err := client.Score(cmd.Context())
			if err != nil {
				return err
			}

			titleStyle := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(breakdown.Level.Color))

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n",
				titleStyle.Render(fmt.Sprintf("LVL %d %s", breakdown.Level.Level, breakdown.Level.Title)),
				dimStyle.Render(breakdown.Level.Description))
			fmt.Fprintf(&b, "%s %d XP\n\n", labelStyle.Render("Total"), breakdown.TotalXP)

			fmt.Fprintf(&b, "%s %s\n",
				progressBar(breakdown.Progress.Percent, lipgloss.Color(breakdown.Level.Color)),
				dimStyle.Render(fmt.Sprintf("%d XP to next level", breakdown.Progress.XPNeeded)))

			if len(breakdown.Sources) > 0 {
				b.WriteString("\n")
			}
			for _, src := range breakdown.Sources {
				line := fmt.Sprintf("%-22s %6d XP", src.Source, src.XP)
				if src.Count > 0 {
					line += dimStyle.Render(fmt.Sprintf("  (%d)", src.Count))
				}
				fmt.Fprintf(&b, "%s\n", sourceStyle.Render(line))
			}

			cmd.Println(b.String())
			return nil
		},
	}
}

func arenaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arena",
		Short: "Show arena placement and deficit streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			arena, err := client.Arena(cmd.Context())
			if err != nil {
				return err
			}

			stageStyle := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(arena.Current.Color))

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n",
				arena.Current.Icon,
				stageStyle.Render(arena.Current.Name))
			fmt.Fprintf(&b, "%s %d day(s)\n", labelStyle.Render("Deficit streak"), arena.DeficitStreak)

			if arena.Next != nil {
				fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf(
					"%d day(s) until %s %s", arena.DaysUntilNext, arena.Next.Icon, arena.Next.Name)))
			} else {
				fmt.Fprintf(&b, "%s\n", dimStyle.Render("Top arena reached"))
			}

			cmd.Println(b.String())
			return nil
		},
	}
}

func progressBar(percent float64, fill color.Color) string {
	filled := int(percent / 100 * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", progressBarWidth-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, percent)
}
