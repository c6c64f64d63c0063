// invaders is a Space Invaders arcade game rendered with Ebitengine.
//
// Usage:
//
//	invaders                 - Start the game
//	invaders play            - Same as running with no arguments
//	invaders scores          - Print the high score table
//	invaders scores reset    - Wipe the high score table
//
// Global flags:
//
//	--config <path>       - Load a YAML config file
//	--seed <value>        - RNG seed for reproducible gameplay
//	--scores-file <path>  - High score file (default: ~/.space_invaders_scores)
//	--mute                - Run without audio
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"spaceinvaders/audio"
	"spaceinvaders/game"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagScoresFile string
	flagMute       bool
)

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "invaders",
	}))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders - Defend the earth from descending alien waves",
	Long: `A Space Invaders arcade game: shoot down the descending formation,
shelter behind destructible barriers, pick off the mystery saucer for
bonus points, and fight for a place in the hall of fame.

Examples:
  invaders
  invaders --seed 42 --mute
  invaders --config ~/my-invaders.yaml
  invaders scores`,
	RunE: runGame,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE:  runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "", "High score file path")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := game.LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	scoresPath := flagScoresFile
	if scoresPath == "" {
		scoresPath = game.DefaultScoresPath()
	}
	scores := game.NewHighScoreManager(cfg, scoresPath)

	sounds := audio.NewManager(flagMute)
	if err := sounds.Initialize(); err != nil {
		// A missing audio device is not worth refusing to play over
		log.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer sounds.Close()

	g := game.NewGame(cfg, scores, sounds, flagSeed)
	g.InitAssets()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Space Invaders")

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
