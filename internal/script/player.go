package script

import (
	"context"
	"fmt"

	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/interact"
	"github.com/san-kum/clothsim/internal/sim"
)

const timeEps = 1e-9

// Player walks a script's events against a live session.
type Player struct {
	script  *Script
	ctrl    *interact.Controller
	session *sim.Session
	next    int
	err     error

	// In-flight drag glide, when the current drag event carries over.
	towing   bool
	towFrom  cloth.Vec3
	towTo    cloth.Vec3
	towStart float64
	towDur   float64
}

// Play replays the script over the session's configured run length,
// taking over the session's pin source for the duration.
func Play(ctx context.Context, session *sim.Session, s *Script) error {
	ctrl := interact.NewController(session.Solver().Grid)
	session.SetPinSource(ctrl)

	p := &Player{script: s, ctrl: ctrl, session: session}
	if err := p.advance(0); err != nil {
		return err
	}

	err := session.RunWithCallback(ctx, func(_ []cloth.Vec3, _ int, t float64) bool {
		// Fire events due before the upcoming tick so their pins and
		// parameter edits land on it.
		if perr := p.advance(t + cloth.FixedStep); perr != nil {
			p.err = perr
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	return p.err
}

func (p *Player) advance(now float64) error {
	for p.next < len(p.script.Events) && p.script.Events[p.next].At <= now+timeEps {
		ev := p.script.Events[p.next]
		p.next++
		if err := p.fire(ev); err != nil {
			return fmt.Errorf("event %q at t=%.3f: %w", ev.Action, ev.At, err)
		}
	}
	p.glide(now)
	return nil
}

// glide steps an in-flight tow toward its endpoint, retargeting the
// drag pin along the straight line between the glide's ends.
func (p *Player) glide(now float64) {
	if !p.towing {
		return
	}
	if !p.ctrl.Drag.Dragging() {
		p.towing = false
		return
	}
	u := (now - p.towStart) / p.towDur
	if u >= 1 {
		p.towing = false
		p.tow(p.towTo)
		return
	}
	if u < 0 {
		u = 0
	}
	p.tow(lerp(p.towFrom, p.towTo, u))
}

func (p *Player) fire(ev Event) error {
	switch ev.Action {
	case "pinch":
		p.ctrl.Pinch.Observe(hand(ev.Hand), interact.HandSignal{Pinching: true, Pos: vec(ev.Pos)})
	case "unpinch":
		p.ctrl.Pinch.Observe(hand(ev.Hand), interact.HandSignal{Pinching: false})
	case "grab":
		p.towing = false
		down := cloth.Vec3{Y: -1}
		if !p.ctrl.Drag.Pick(p.session.Solver().Particles, vec(ev.Pos), down) {
			return fmt.Errorf("no particle within reach of %v", ev.Pos)
		}
	case "drag":
		if !p.ctrl.Drag.Dragging() {
			return fmt.Errorf("nothing grabbed")
		}
		if ev.Over > 0 {
			pin, _ := p.ctrl.Drag.Pin()
			p.towing = true
			p.towFrom = pin.Target
			p.towTo = vec(ev.Pos)
			p.towStart = ev.At
			p.towDur = ev.Over
			return nil
		}
		p.towing = false
		p.tow(vec(ev.Pos))
	case "ungrab":
		p.towing = false
		p.ctrl.Drag.Release()
	case "set":
		return p.apply(ev.Set)
	case "reset":
		p.towing = false
		p.session.Reset()
	}
	return nil
}

// tow retargets the drag pin by casting a straight-down ray through the
// target, so scripted tows move in the horizontal plane fixed at grab
// time.
func (p *Player) tow(target cloth.Vec3) {
	p.ctrl.Drag.Move(interact.Ray{
		Origin: cloth.Vec3{X: target.X, Y: target.Y + 10, Z: target.Z},
		Dir:    cloth.Vec3{Y: -1},
	})
}

func (p *Player) apply(set map[string]float64) error {
	cfg := p.session.Config()
	for k, v := range set {
		switch k {
		case "stiffness":
			cfg.Cloth.Stiffness = v
			cfg.Cloth.GSM = 0
		case "gsm":
			cfg.Cloth.GSM = v
		case "cloth_friction":
			cfg.Cloth.Friction = v
		case "sphere_friction":
			cfg.Sphere.Friction = v
		case "sphere_radius":
			cfg.Sphere.Radius = v
		case "resolution":
			if int(v) < 1 {
				return fmt.Errorf("resolution %v out of range", v)
			}
			cfg.Cloth.Resolution = int(v)
		case "size":
			if v <= 0 {
				return fmt.Errorf("size %v out of range", v)
			}
			cfg.Cloth.Size = v
		}
	}
	return nil
}

func hand(name string) interact.Hand {
	if name == "left" {
		return interact.HandLeft
	}
	return interact.HandRight
}

func vec(a [3]float64) cloth.Vec3 {
	return cloth.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func lerp(a, b cloth.Vec3, u float64) cloth.Vec3 {
	return a.Add(b.Sub(a).Scale(u))
}
