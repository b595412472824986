package laze

import (
	"math"

	"github.com/vovakirdan/tui-laze/internal/config"
	"github.com/vovakirdan/tui-laze/internal/core"
)

// StartYaw faces north (-Z).
const StartYaw = 0.0

// Player holds the camera orientation and vertical motion. The planar
// position lives in world.World.
type Player struct {
	Yaw     float64 // degrees, 0 faces -Z, clockwise
	Pitch   float64 // degrees, positive looks down
	EyeY    float64 // eye height above the floor
	VelY    float64
	Jumping bool
}

func newPlayer(ground float64) Player {
	return Player{Yaw: StartYaw, EyeY: ground}
}

// Look applies turn and look input for one tick.
func (p *Player) Look(in core.InputFrame, cam config.CameraConfig) {
	p.Yaw = wrapDegrees(p.Yaw + in.Axis(core.ActionTurnRight, core.ActionTurnLeft)*cam.TurnSpeed)
	p.Pitch = core.ClampF(p.Pitch+in.Axis(core.ActionLookDown, core.ActionLookUp)*cam.LookSpeed, -cam.MaxPitch, cam.MaxPitch)
}

// Fall integrates one tick of vertical motion. A jump starts only from the
// ground.
func (p *Player) Fall(jump bool, ph config.PhysicsConfig) {
	if jump && !p.Jumping {
		p.VelY = ph.JumpImpulse
		p.Jumping = true
	}

	p.VelY -= ph.Gravity
	p.EyeY += p.VelY

	if p.EyeY <= ph.GroundLevel {
		p.Land(ph.GroundLevel)
	}
}

// Land puts the player back on the ground at rest.
func (p *Player) Land(ground float64) {
	p.EyeY = ground
	p.VelY = 0
	p.Jumping = false
}

// Compass returns the nearest cardinal direction for the current yaw.
func (p *Player) Compass() string {
	dirs := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	i := int(math.Round(p.Yaw/45)) % len(dirs)
	return dirs[i]
}

// wrapDegrees maps any angle into [0, 360).
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
