package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/clothsim/internal/analysis"
	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/interact"
	"github.com/san-kum/clothsim/internal/sim"
)

// dropConfig is the acceptance scene: a 2m sheet dropped from 2m onto
// a unit sphere at the origin, grippy enough to stick on contact.
func dropConfig(stiffness float64) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Cloth.Resolution = 4
	cfg.Cloth.Size = 2.0
	cfg.Cloth.DropHeight = 2.0
	cfg.Cloth.Stiffness = stiffness
	cfg.Cloth.Friction = 0.6
	cfg.Sphere.Radius = 1.0
	cfg.Sphere.Friction = 0.6
	cfg.Sphere.Position = [3]float64{0, 0, 0}
	cfg.Run.Ticks = 240
	return cfg
}

func settle(cfg *config.Config) *sim.Result {
	session, err := sim.NewSession(cfg)
	Expect(err).NotTo(HaveOccurred())

	result, err := session.Run(context.Background())
	Expect(err).NotTo(HaveOccurred())
	Expect(result.Errors).To(BeEmpty())
	Expect(result.Ticks).To(Equal(240))
	return result
}

var _ = Describe("Draping over the sphere", func() {
	var (
		sphere cloth.Sphere
		stiff  *sim.Result
	)

	BeforeEach(func() {
		cfg := dropConfig(1.0)
		_, sphere, _ = cfg.Scene()
		stiff = settle(cfg)
	})

	It("stays finite for the whole run", func() {
		for _, frame := range stiff.Frames {
			for _, p := range frame {
				Expect(p.IsFinite()).To(BeTrue())
			}
		}
	})

	It("never lets a particle inside the sphere", func() {
		for _, frame := range stiff.Frames {
			for _, p := range frame {
				Expect(p.Sub(sphere.Center).Length()).To(BeNumerically(">=", sphere.Radius-1e-6))
			}
		}
	})

	It("rests contact particles on the padded surface", func() {
		frame := stiff.Final()
		contacts := 0
		for _, p := range frame {
			d := p.Sub(sphere.Center).Length()
			if d <= sphere.Radius+0.1 {
				contacts++
			}
		}
		Expect(contacts).To(BeNumerically(">=", 1))
	})

	It("sags beyond the contact region", func() {
		frame := stiff.Final()
		Expect(analysis.HeightSpread(frame)).To(BeNumerically(">", 0.1))
		Expect(analysis.MinHeight(frame)).To(BeNumerically("<", sphere.Radius))
	})

	It("collapses further when the sheet is soft", func() {
		soft := settle(dropConfig(0.1))

		stiffSil := analysis.SilhouetteRadius(stiff.Final(), sphere.Center)
		softSil := analysis.SilhouetteRadius(soft.Final(), sphere.Center)
		Expect(softSil).To(BeNumerically("<", stiffSil))

		Expect(analysis.MeanHeight(soft.Final())).To(
			BeNumerically("<", analysis.MeanHeight(stiff.Final())-0.02))
	})
})

var _ = Describe("Pinching a corner", func() {
	It("holds the corner while the rest of the sheet drapes", func() {
		cfg := dropConfig(0.5)
		grid, _, _ := cfg.Scene()

		session, err := sim.NewSession(cfg)
		Expect(err).NotTo(HaveOccurred())

		controller := interact.NewController(grid)
		session.SetPinSource(controller)

		target := cloth.Vec3{X: 1.2, Y: 2.0, Z: -1.2}
		controller.Pinch.Observe(interact.HandLeft, interact.HandSignal{Pinching: true, Pos: target})

		for i := 0; i < 120; i++ {
			session.Step()
		}

		corner := controller.Pinch.Corner(interact.HandLeft)
		Expect(session.Solver().Particles.Pos[corner]).To(Equal(target))

		others := analysis.MinHeight(session.Solver().Particles.Pos)
		Expect(others).To(BeNumerically("<", 1.5))

		controller.Pinch.Observe(interact.HandLeft, interact.HandSignal{Pinching: false})
		for i := 0; i < 30; i++ {
			session.Step()
		}
		Expect(session.Solver().Particles.Pos[corner].Y).To(BeNumerically("<", 1.95))
	})
})
