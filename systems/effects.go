package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
)

// UpdateEffects processes visual effect components (flash, screen shake)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenShake(ecs)
}

// TriggerScreenShake kicks the shake singleton. A stronger request
// replaces a weaker one already running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if intensity < shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateScreenShake advances the shake oscillation and decays it out
func updateScreenShake(ecs *ecs.ECS) {
	components.ScreenShake.Each(ecs.World, func(e *donburi.Entry) {
		shake := components.ScreenShake.Get(e)
		if shake.Duration <= 0 {
			shake.Intensity = 0
			shake.OffsetX = 0
			shake.OffsetY = 0
			return
		}

		shake.Duration--
		shake.Elapsed++
		shake.Intensity *= shake.Decay

		angle := rand.Float64() * 2 * math.Pi
		shake.OffsetX = math.Cos(angle) * shake.Intensity
		shake.OffsetY = math.Sin(angle) * shake.Intensity
	})
}
