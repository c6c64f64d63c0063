package game

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all game tuning constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// GameAreaMarginX is the horizontal playfield margin in pixels
	GameAreaMarginX int `yaml:"game_area_margin_x"`

	// GameAreaMarginY is the vertical playfield margin in pixels
	GameAreaMarginY int `yaml:"game_area_margin_y"`

	// Player settings
	PlayerWidth          int   `yaml:"player_width"`
	PlayerHeight         int   `yaml:"player_height"`
	PlayerSpeed          int   `yaml:"player_speed"`
	PlayerLives          int   `yaml:"player_lives"`
	PlayerBulletWidth    int   `yaml:"player_bullet_width"`
	PlayerBulletHeight   int   `yaml:"player_bullet_height"`
	PlayerBulletSpeed    int   `yaml:"player_bullet_speed"`
	PlayerBulletCooldown int64 `yaml:"player_bullet_cooldown_ms"`
	PlayerRespawnDelay   int64 `yaml:"player_respawn_delay_ms"`

	// Invader formation settings
	InvaderRows       int `yaml:"invader_rows"`
	InvadersPerRow    int `yaml:"invaders_per_row"`
	InvaderWidth      int `yaml:"invader_width"`
	InvaderHeight     int `yaml:"invader_height"`
	InvaderHSpacing   int `yaml:"invader_h_spacing"`
	InvaderVSpacing   int `yaml:"invader_v_spacing"`
	InvaderHPadding   int `yaml:"invader_h_padding"`
	InvaderVPadding   int `yaml:"invader_v_padding"`
	InvaderMoveSpeedH int `yaml:"invader_move_speed_h"`
	InvaderMoveDown   int `yaml:"invader_move_down"`

	InvaderBulletWidth  int     `yaml:"invader_bullet_width"`
	InvaderBulletHeight int     `yaml:"invader_bullet_height"`
	InvaderBulletSpeed  int     `yaml:"invader_bullet_speed"`
	InvaderFiringChance float64 `yaml:"invader_firing_chance"`

	// Scoring per invader tier
	ScoreInvaderTop    int `yaml:"score_invader_top"`
	ScoreInvaderMiddle int `yaml:"score_invader_middle"`
	ScoreInvaderBottom int `yaml:"score_invader_bottom"`

	// Barrier settings
	BarrierCount        int `yaml:"barrier_count"`
	BarrierWidth        int `yaml:"barrier_width"`
	BarrierHeight       int `yaml:"barrier_height"`
	BarrierYPos         int `yaml:"barrier_y_pos"`
	BarrierDamageLevels int `yaml:"barrier_damage_levels"`
	BarrierPieceSize    int `yaml:"barrier_piece_size"`
	BarrierDamageRadius int `yaml:"barrier_damage_radius"`

	// Mystery ship settings
	MysteryShipWidth    int   `yaml:"mystery_ship_width"`
	MysteryShipHeight   int   `yaml:"mystery_ship_height"`
	MysteryShipSpeed    int   `yaml:"mystery_ship_speed"`
	MysteryShipPoints   []int `yaml:"mystery_ship_points"`
	MysteryShipMinDelay int64 `yaml:"mystery_ship_min_delay_ms"`
	MysteryShipMaxDelay int64 `yaml:"mystery_ship_max_delay_ms"`

	// High score settings
	HighScoreCount      int    `yaml:"high_score_count"`
	HighScoreNameLength int    `yaml:"high_score_name_length"`
	HighScoreChars      string `yaml:"high_score_chars"`

	// Timing settings in milliseconds
	TransitionDelay   int64 `yaml:"transition_delay_ms"`
	ExplosionLifetime int64 `yaml:"explosion_lifetime_ms"`
	NameEntryDelay    int64 `yaml:"name_entry_delay_ms"`
	GameOverMinDelay  int64 `yaml:"game_over_min_delay_ms"`

	// ScrollSpeed is the hall of fame banner speed in pixels per tick
	ScrollSpeed int `yaml:"scroll_speed"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     800,
		ScreenHeight:    600,
		GameAreaMarginX: 50,
		GameAreaMarginY: 80,

		PlayerWidth:          60,
		PlayerHeight:         30,
		PlayerSpeed:          5,
		PlayerLives:          3,
		PlayerBulletWidth:    3,
		PlayerBulletHeight:   15,
		PlayerBulletSpeed:    10,
		PlayerBulletCooldown: 500,
		PlayerRespawnDelay:   1000,

		InvaderRows:       5,
		InvadersPerRow:    11,
		InvaderWidth:      40,
		InvaderHeight:     35,
		InvaderHSpacing:   15,
		InvaderVSpacing:   15,
		InvaderHPadding:   50,
		InvaderVPadding:   50,
		InvaderMoveSpeedH: 1,
		InvaderMoveDown:   20,

		InvaderBulletWidth:  3,
		InvaderBulletHeight: 15,
		InvaderBulletSpeed:  5,
		InvaderFiringChance: 0.01,

		ScoreInvaderTop:    30,
		ScoreInvaderMiddle: 20,
		ScoreInvaderBottom: 10,

		BarrierCount:        4,
		BarrierWidth:        80,
		BarrierHeight:       60,
		BarrierYPos:         420,
		BarrierDamageLevels: 4,
		BarrierPieceSize:    5,
		BarrierDamageRadius: 2,

		MysteryShipWidth:    60,
		MysteryShipHeight:   30,
		MysteryShipSpeed:    3,
		MysteryShipPoints:   []int{50, 100, 150, 300},
		MysteryShipMinDelay: 15000,
		MysteryShipMaxDelay: 30000,

		HighScoreCount:      10,
		HighScoreNameLength: 3,
		HighScoreChars:      "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ",

		TransitionDelay:   2000,
		ExplosionLifetime: 500,
		NameEntryDelay:    150,
		GameOverMinDelay:  2000,

		ScrollSpeed: 1,
	}
}

// GameArea returns the playfield rectangle inside the screen margins
func (c Config) GameArea() Rectangle {
	return Rectangle{
		X:      c.GameAreaMarginX,
		Y:      c.GameAreaMarginY,
		Width:  c.ScreenWidth - 2*c.GameAreaMarginX,
		Height: c.ScreenHeight - 2*c.GameAreaMarginY,
	}
}

// PlayerSpawn returns the player's spawn position
func (c Config) PlayerSpawn() (int, int) {
	x := c.ScreenWidth/2 - c.PlayerWidth/2
	y := c.ScreenHeight - c.GameAreaMarginY - c.PlayerHeight - 20
	return x, y
}

// LoadConfig loads the configuration, applying a yaml override on top of the
// defaults. Search order: customPath -> ~/.invaders/config.yaml -> defaults.
// A missing or malformed discovered file falls back to defaults; an explicit
// customPath that cannot be read or parsed is an error.
func LoadConfig(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			// Ignore a broken user config rather than refusing to start
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return DefaultConfig(), nil
			}
		}
	}

	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "config.yaml")
}
