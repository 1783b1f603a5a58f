package simulation

import (
	"github.com/charmbracelet/harmonica"

	"github.com/aaratha/rope-survivor/pkg/physics"
)

// targeter turns input into the rope head target and locates the play frame
type targeter interface {
	target(head physics.Vec2, in *InputState) physics.Vec2
	frameCenter(viewport physics.Vec2) physics.Vec2
	reset(anchor physics.Vec2)
}

func newTargeter(cfg Config) targeter {
	switch cfg.Targeting {
	case TargetCameraDrag:
		return &cameraDrag{sensitivity: cfg.DragSensitivity, lerp: cfg.LerpFactor}
	case TargetSpring:
		fps := int(1/cfg.TimeStep + 0.5)
		return &springFollow{
			spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.SpringFrequency, cfg.SpringDamping),
		}
	default:
		return &directLerp{lerp: cfg.LerpFactor}
	}
}

// cameraDrag moves a camera against pointer drags; the head lerps to the camera
type cameraDrag struct {
	camera      physics.Vec2
	sensitivity float64
	lerp        float64
}

func (c *cameraDrag) target(head physics.Vec2, in *InputState) physics.Vec2 {
	if in.Held {
		c.camera = c.camera.Sub(in.Delta.Mul(c.sensitivity))
	}
	return head.Lerp(c.camera, c.lerp)
}

func (c *cameraDrag) frameCenter(physics.Vec2) physics.Vec2 {
	return c.camera
}

func (c *cameraDrag) reset(anchor physics.Vec2) {
	c.camera = anchor
}

// directLerp lerps the head toward the pointer while it is held
type directLerp struct {
	lerp float64
}

func (d *directLerp) target(head physics.Vec2, in *InputState) physics.Vec2 {
	if !in.Held {
		return head
	}
	return head.Lerp(in.Pointer, d.lerp)
}

func (d *directLerp) frameCenter(viewport physics.Vec2) physics.Vec2 {
	return viewport.Mul(0.5)
}

func (d *directLerp) reset(physics.Vec2) {}

// springFollow drives each head axis toward the last held pointer position
// through a damped spring
type springFollow struct {
	spring harmonica.Spring
	pos    physics.Vec2
	vel    physics.Vec2
	goal   physics.Vec2
}

func (s *springFollow) target(_ physics.Vec2, in *InputState) physics.Vec2 {
	if in.Held {
		s.goal = in.Pointer
	}
	s.pos.X, s.vel.X = s.spring.Update(s.pos.X, s.vel.X, s.goal.X)
	s.pos.Y, s.vel.Y = s.spring.Update(s.pos.Y, s.vel.Y, s.goal.Y)
	return s.pos
}

func (s *springFollow) frameCenter(viewport physics.Vec2) physics.Vec2 {
	return viewport.Mul(0.5)
}

func (s *springFollow) reset(anchor physics.Vec2) {
	s.pos = anchor
	s.goal = anchor
	s.vel = physics.Vec2{}
}
