package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/vmath"
)

var _ = Describe("Step", func() {
	var p physics.Params

	BeforeEach(func() {
		p = physics.DefaultParams()
	})

	Context("with a body resting on the floor", func() {
		It("leaves it exactly where it was", func() {
			population := []physics.Ball{{Position: vmath.V(100, 90), Radius: 10}}

			next := p.Step(population, 200, 100)

			Expect(next[0]).To(Equal(population[0]))
		})

		It("stays put over many ticks", func() {
			population := []physics.Ball{{Position: vmath.V(100, 90), Radius: 10}}
			for i := 0; i < 600; i++ {
				population = p.Step(population, 200, 100)
			}
			Expect(population[0].Position).To(Equal(vmath.V(100, 90)))
		})
	})

	Context("with a body in free fall", func() {
		It("applies one tick of gravity and drag", func() {
			population := []physics.Ball{{Position: vmath.V(100, 0), Radius: 10}}

			next := p.Step(population, 200, 1000)

			wantVY := 800.0 / 60.0 * 0.98
			Expect(next[0].Velocity.Y).To(BeNumerically("~", wantVY, 1e-9))
			Expect(next[0].Position.Y).To(BeNumerically("~", wantVY/60.0, 1e-9))
			Expect(next[0].Position.X).To(Equal(100.0))
		})

		It("speeds up every tick until it reaches the floor", func() {
			ball := physics.Ball{Position: vmath.V(100, 0), Radius: 10}
			ticks := 0
			for ; ticks < 1000; ticks++ {
				next := p.Step([]physics.Ball{ball}, 200, 1000)[0]
				if next.Position.Y+next.Radius >= 1000 {
					break
				}
				Expect(next.Velocity.Y).To(BeNumerically(">", ball.Velocity.Y))
				ball = next
			}
			Expect(ticks).To(BeNumerically(">", 10))
			Expect(ticks).To(BeNumerically("<", 1000))
		})

		It("eventually comes to rest on the floor", func() {
			population := []physics.Ball{{Position: vmath.V(100, 0), Velocity: vmath.V(120, 0), Radius: 10}}
			for i := 0; i < 3000; i++ {
				population = p.Step(population, 200, 300)
			}
			Expect(p.IsAsleep(population[0], 300)).To(BeTrue())
			Expect(population[0].Position.Y).To(BeNumerically("~", 290, 1))
			Expect(population[0].Position.X).To(BeNumerically(">=", 10))
			Expect(population[0].Position.X).To(BeNumerically("<=", 190))
		})
	})

	Context("with two overlapping bodies closing in", func() {
		var population []physics.Ball

		BeforeEach(func() {
			population = []physics.Ball{
				{Position: vmath.V(100, 500), Velocity: vmath.V(50, 0), Radius: 10},
				{Position: vmath.V(115, 500), Velocity: vmath.V(-50, 0), Radius: 10},
			}
		})

		It("pushes them apart", func() {
			before := vmath.Distance(population[0].Position, population[1].Position)

			next := p.Step(population, 1000, 1000)

			Expect(vmath.Distance(next[0].Position, next[1].Position)).To(BeNumerically(">", before))
		})

		It("stops them approaching along the normal", func() {
			along := func(balls []physics.Ball) float64 {
				n := vmath.Normalize(balls[0].Position.Sub(balls[1].Position))
				return vmath.Dot(balls[0].Velocity.Sub(balls[1].Velocity), n)
			}
			Expect(along(population)).To(BeNumerically("<", 0))

			next := p.Step(population, 1000, 1000)

			Expect(along(next)).To(BeNumerically(">", along(population)))
		})
	})

	Context("with a sleeping body under a falling one", func() {
		It("only updates the moving body", func() {
			population := []physics.Ball{
				{Position: vmath.V(100, 990), Radius: 10},
				{Position: vmath.V(100, 975), Velocity: vmath.V(0, 100), Radius: 10},
			}

			next := p.Step(population, 200, 1000)

			Expect(next[0]).To(Equal(population[0]))
			Expect(next[1].Velocity.Y).To(BeNumerically("<", 0))
			Expect(next[1].Position.Y).To(BeNumerically("<", 976))
		})
	})

	Context("with a crowd spawned at one point", func() {
		It("keeps every body finite", func() {
			sp := physics.NewSpawner(newRand(3), physics.DefaultSpawnParams())
			var population []physics.Ball
			for i := 0; i < 5; i++ {
				population = append(population, sp.Spawn(vmath.V(300, 200))...)
			}
			for i := 0; i < 1200; i++ {
				population = p.Step(population, 640, 480)
				for _, b := range population {
					Expect(b.IsFinite()).To(BeTrue())
				}
			}
		})
	})
})
