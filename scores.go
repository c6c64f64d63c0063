package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spaceinvaders/game"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the high score table",
	Long: `Display the saved high score table without starting the game.

Examples:
  invaders scores
  invaders scores reset`,
	RunE: runScores,
}

var scoresResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the high score table",
	RunE:  runScoresReset,
}

func init() {
	scoresCmd.AddCommand(scoresResetCmd)
}

func openScores() *game.HighScoreManager {
	cfg, err := game.LoadConfig(flagConfig)
	if err != nil {
		cfg = game.DefaultConfig()
	}

	path := flagScoresFile
	if path == "" {
		path = game.DefaultScoresPath()
	}
	return game.NewHighScoreManager(cfg, path)
}

func runScores(cmd *cobra.Command, args []string) error {
	scores := openScores()

	entries := scores.HighScores()
	if len(entries) == 0 {
		fmt.Println("No high scores recorded yet.")
		return nil
	}

	fmt.Println("High Scores - Space Invaders")
	fmt.Println("============================")
	fmt.Printf("%-6s %-6s %8s %7s\n", "Rank", "Name", "Score", "Level")
	for i, e := range entries {
		fmt.Printf("%-6d %-6s %8d %7d\n", i+1, e.Name, e.Score, e.Level)
	}
	return nil
}

func runScoresReset(cmd *cobra.Command, args []string) error {
	scores := openScores()
	scores.ResetScores()
	fmt.Println("High scores reset.")
	return nil
}
