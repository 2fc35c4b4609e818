package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the renderer layer all draw systems register on.
const Default = ecs.LayerDefault

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// ArenaConfig contains the stage boundaries
type ArenaConfig struct {
	GroundY     float64 // y of the floor surface (fighter feet rest here)
	LeftBound   float64 // min x a hurtbox may reach
	RightBound  float64 // max x a hurtbox may reach
	CellSize    int     // resolv space cell size
	WallWidth   float64
	FloorHeight float64
}

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Movement
	MoveSpeed    float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64
	Friction     float64 // multiplicative decay per frame while grounded
	StopEpsilon  float64 // speeds below this snap to zero

	// Combat
	Health         int
	HitstopFrames  int
	Pushback       float64 // pixels a grounded defender is shoved on a clean hit
	BlockPushback  float64 // pixels a grounded defender is shoved on a blocked hit
	ChipRate       float64 // fraction of damage dealt through block
	AttackCooldown int     // frames after recovery before a new attack may start

	// Dimensions
	Width  float64
	Height float64
}

// AttackConfig describes one attack's timing, damage and reach
type AttackConfig struct {
	Damage      int
	TotalFrames int
	ActiveStart int // first active frame, inclusive
	ActiveEnd   int // first inactive frame after the window
	BoxWidth    float64
	BoxHeight   float64
	EdgeInset   float64 // box origin pulled inside the hurtbox edge
}

// MatchConfig contains round and match structure values
type MatchConfig struct {
	RoundFrames    int // round clock in frames
	BestOf         int
	IntroFrames    int // pre-round input freeze
	MatchEndFrames int // post-match freeze before leaving the scene
	RoundEndFrames int // banner time between rounds
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	TimerFontSize   float64
	BannerFontSize  float64
	DrainSpeed      float32 // seconds for the trailing bar to catch up
}

// ScreenShakeConfig contains screen shake tuning
type ScreenShakeConfig struct {
	HitIntensity float64
	HitDuration  int
	KOIntensity  float64
	KODuration   int
	Decay        float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to a fight
	DrawHitboxes bool // Outline hurtboxes and active attack boxes
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Punch AttackConfig
var Kick AttackConfig
var Match MatchConfig
var HUD HUDConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DarkRed      = color.RGBA{R: 120, G: 20, B: 20, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	LightGray    = color.RGBA{R: 210, G: 210, B: 210, A: 255}
)

// Fighter and stage palette
var (
	FighterColors = [2]color.RGBA{
		{R: 40, G: 170, B: 255, A: 255},
		{R: 255, G: 100, B: 80, A: 255},
	}
	BlockColor  = color.RGBA{R: 120, G: 120, B: 255, A: 255}
	HitboxColor = color.RGBA{R: 255, G: 230, B: 100, A: 255}
	BGTop       = color.RGBA{R: 25, G: 27, B: 35, A: 255}
	BGBottom    = color.RGBA{R: 10, G: 10, B: 16, A: 255}
	FloorColor  = color.RGBA{R: 26, G: 34, B: 40, A: 255}
	StripeColor = color.RGBA{R: 36, G: 40, B: 50, A: 255}
	BoundsColor = color.RGBA{R: 70, G: 80, B: 100, A: 255}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 560,
	}

	Arena = ArenaConfig{
		GroundY:     470,
		LeftBound:   40,
		RightBound:  960,
		CellSize:    16,
		WallWidth:   40,
		FloorHeight: 90,
	}

	Fighter = FighterConfig{
		MoveSpeed:    6.0,
		JumpSpeed:    -16.5,
		Gravity:      0.85,
		MaxFallSpeed: 18.0,
		Friction:     0.85,
		StopEpsilon:  0.15,

		Health:         100,
		HitstopFrames:  4,
		Pushback:       7.0,
		BlockPushback:  4.0,
		ChipRate:       0.2,
		AttackCooldown: 8,

		Width:  56,
		Height: 98,
	}

	Punch = AttackConfig{
		Damage:      8,
		TotalFrames: 14,
		ActiveStart: 4,
		ActiveEnd:   9,
		BoxWidth:    45,
		BoxHeight:   16,
		EdgeInset:   4,
	}

	Kick = AttackConfig{
		Damage:      12,
		TotalFrames: 18,
		ActiveStart: 6,
		ActiveEnd:   12,
		BoxWidth:    60,
		BoxHeight:   18,
		EdgeInset:   4,
	}

	Match = MatchConfig{
		RoundFrames:    60 * 60,
		BestOf:         3,
		IntroFrames:    60,
		MatchEndFrames: 120,
		RoundEndFrames: 90,
	}

	HUD = HUDConfig{
		HealthBarWidth:  380,
		HealthBarHeight: 22,
		HealthBarMargin: 30,
		TimerFontSize:   36,
		BannerFontSize:  48,
		DrainSpeed:      0.6,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity: 3.0,
		HitDuration:  8,
		KOIntensity:  7.0,
		KODuration:   24,
		Decay:        0.85,
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		DrawHitboxes: false,
	}
}
