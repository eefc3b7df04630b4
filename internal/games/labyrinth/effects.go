package labyrinth

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/labyrinth/internal/core"
)

// TrailPoint is one fading sample of the player's visual path.
type TrailPoint struct {
	X, Y    float64
	Opacity float64 // 1 when pushed, removed at 0
}

// Trail is a bounded list of recent player positions, oldest first.
type Trail struct {
	points []TrailPoint
	max    int
}

// NewTrail creates a trail holding at most max points. A non-positive max
// disables the trail.
func NewTrail(max int) *Trail {
	if max < 0 {
		max = 0
	}
	return &Trail{points: make([]TrailPoint, 0, max), max: max}
}

// Push appends a fully opaque point, evicting the oldest when full.
func (t *Trail) Push(x, y float64) {
	if t.max == 0 {
		return
	}
	if len(t.points) == t.max {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, TrailPoint{X: x, Y: y, Opacity: 1})
}

// Decay lowers every point's opacity by rate per second and drops the ones
// that have faded out.
func (t *Trail) Decay(dt, rate float64) {
	if dt <= 0 || rate <= 0 {
		return
	}
	live := t.points[:0]
	for _, p := range t.points {
		p.Opacity -= rate * dt
		if p.Opacity > 0 {
			live = append(live, p)
		}
	}
	t.points = live
}

// Points returns the trail, oldest first. The slice is owned by the trail.
func (t *Trail) Points() []TrailPoint {
	return t.points
}

// Len returns the number of live points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Reset removes all points.
func (t *Trail) Reset() {
	t.points = t.points[:0]
}

// Particle is one piece of the win celebration, in cell units.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Spin     float64 // radians per second
	Color    core.Color
}

// Glyph returns the rune for the particle's current rotation.
func (p Particle) Glyph() rune {
	glyphs := [...]rune{'*', '+', 'x', '+'}
	q := int(math.Floor(p.Rotation/(math.Pi/2))) % len(glyphs)
	if q < 0 {
		q += len(glyphs)
	}
	return glyphs[q]
}

// Particles is a simple ballistic particle system.
type Particles struct {
	list []Particle
}

// Burst spawns n particles at (x, y) with random velocity, color and spin.
func (ps *Particles) Burst(rng *rand.Rand, x, y float64, n int) {
	for range n {
		angle := rng.Float64() * 2 * math.Pi
		speed := 4 + rng.Float64()*8
		ps.list = append(ps.list, Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle)*speed - 6,
			Rotation: rng.Float64() * 2 * math.Pi,
			Spin:     (rng.Float64() - 0.5) * 4 * math.Pi,
			Color:    core.ParticleColors[rng.Intn(len(core.ParticleColors))],
		})
	}
}

// Update integrates gravity and motion over dt seconds and removes particles
// that fell below floor.
func (ps *Particles) Update(dt, gravity, floor float64) {
	if dt <= 0 || len(ps.list) == 0 {
		return
	}
	live := ps.list[:0]
	for _, p := range ps.list {
		p.VY += gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation += p.Spin * dt
		if p.Y <= floor {
			live = append(live, p)
		}
	}
	ps.list = live
}

// All returns the live particles. The slice is owned by the system.
func (ps *Particles) All() []Particle {
	return ps.list
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.list)
}

// Reset removes all particles.
func (ps *Particles) Reset() {
	ps.list = ps.list[:0]
}
