package dynamo

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustGrid(p Params) *Grid {
	g, err := New(p)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func seeded(w, h int, seed int64) Params {
	p := DefaultParams(w, h)
	p.Seed = seed
	return p
}

var _ = Describe("Grid", func() {
	Describe("construction", func() {
		DescribeTable("neighbor counts",
			func(w, h int) {
				g := mustGrid(seeded(w, h, 1))

				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						borders := 0
						if x == 0 || x == w-1 {
							borders++
						}
						if y == 0 || y == h-1 {
							borders++
						}
						want := map[int]int{0: 8, 1: 5, 2: 3}[borders]
						Expect(g.cells[g.index(x, y)].Neighbors).To(Equal(want), "cell (%d,%d)", x, y)
					}
				}
			},
			Entry("2x2", 2, 2),
			Entry("5x5", 5, 5),
			Entry("7x4", 7, 4),
			Entry("31x17", 31, 17),
		)

		It("should count actual neighbors on a single row", func() {
			g := mustGrid(seeded(4, 1, 1))
			Expect(g.cells[0].Neighbors).To(Equal(1))
			Expect(g.cells[1].Neighbors).To(Equal(2))
			Expect(g.cells[3].Neighbors).To(Equal(1))
		})

		It("should place exactly two opposing pacemakers", func() {
			w, h := 9, 6
			g := mustGrid(seeded(w, h, 3))

			var locked []Cell
			g.Each(func(c Cell) {
				if c.Locked {
					locked = append(locked, c)
				}
			})

			Expect(locked).To(HaveLen(2))
			Expect(g.At(w/2, h/2).Locked).To(BeTrue())
			Expect(g.At(w/2, h/2).Speed).To(Equal(TwoPi))
			Expect(g.At(w/2+1, h/2).Locked).To(BeTrue())
			Expect(g.At(w/2+1, h/2).Speed).To(Equal(-TwoPi))
			Expect(g.Pacemakers()).To(HaveLen(2))
		})

		It("should skip pacemakers outside the grid", func() {
			g := mustGrid(seeded(2, 1, 3))
			Expect(g.Pacemakers()).To(Equal([]Pacemaker{{X: 1, Y: 0, Speed: TwoPi}}))
		})

		It("should honour an explicit empty pacemaker list", func() {
			p := seeded(5, 5, 3)
			p.Pacemakers = []Pacemaker{}
			g := mustGrid(p)

			g.Each(func(c Cell) {
				Expect(c.Locked).To(BeFalse())
			})
		})

		It("should draw initial conditions in range", func() {
			g := mustGrid(seeded(20, 12, 99))
			g.Each(func(c Cell) {
				Expect(c.Phase[0]).To(BeNumerically(">=", 0))
				Expect(c.Phase[0]).To(BeNumerically("<", TwoPi))
				Expect(c.Phase[1]).To(BeNumerically(">=", 0))
				Expect(c.Phase[1]).To(BeNumerically("<", TwoPi))
				if !c.Locked {
					Expect(c.Speed).To(BeNumerically(">=", -TwoPi))
					Expect(c.Speed).To(BeNumerically("<", TwoPi))
				}
			})
		})

		It("should reproduce a layout from its seed", func() {
			a := mustGrid(seeded(8, 8, 1234))
			b := mustGrid(seeded(8, 8, 1234))
			Expect(b.cells).To(Equal(a.cells))
			Expect(a.Seed()).To(Equal(int64(1234)))
		})

		It("should keep the configured coupling", func() {
			p := seeded(4, 4, 1)
			p.Coupling = Coupling{Rate: 0.5, HandRatio: 12}
			g := mustGrid(p)

			Expect(g.Coupling()).To(Equal(Coupling{Rate: 0.5, HandRatio: 12}))
		})

		It("should pick a seed when none is given", func() {
			g := mustGrid(DefaultParams(3, 3))
			Expect(g.Seed()).NotTo(BeZero())
		})

		It("should start at rest in rest mode", func() {
			p := seeded(5, 5, 1)
			p.Init = InitRest
			g := mustGrid(p)
			g.Each(func(c Cell) {
				if !c.Locked {
					Expect(c.Speed).To(BeZero())
					Expect(c.Phase).To(Equal([2]float64{}))
				}
			})
		})

		DescribeTable("rejecting bad params",
			func(mutate func(*Params), want error) {
				p := seeded(4, 4, 1)
				mutate(&p)
				_, err := New(p)
				Expect(err).To(MatchError(want))
			},
			Entry("zero width", func(p *Params) { p.Width = 0 }, ErrInvalidDimensions),
			Entry("negative height", func(p *Params) { p.Height = -1 }, ErrInvalidDimensions),
			Entry("negative rate", func(p *Params) { p.Coupling.Rate = -0.1 }, ErrParameterBounds),
			Entry("zero hand ratio", func(p *Params) { p.Coupling.HandRatio = 0 }, ErrParameterBounds),
			Entry("unknown init", func(p *Params) { p.Init = "spiral" }, ErrParameterBounds),
			Entry("NaN pacemaker", func(p *Params) {
				p.Pacemakers = []Pacemaker{{X: 0, Y: 0, Speed: math.NaN()}}
			}, ErrParameterBounds),
		)
	})

	Describe("stepping", func() {
		const dt = 1.0 / 60

		It("should not depend on accumulation order", func() {
			a := mustGrid(seeded(7, 6, 42))
			b := mustGrid(seeded(7, 6, 42))
			w, _ := b.Dims()

			a.Accumulate()
			for _, i := range rand.New(rand.NewSource(7)).Perm(b.Len()) {
				b.accumulateCell(i%w, i/w)
			}
			Expect(b.cells).To(Equal(a.cells))

			a.Advance(dt)
			b.Advance(dt)
			Expect(b.cells).To(Equal(a.cells))
		})

		It("should match a sequential run when split across workers", func() {
			seq := mustGrid(seeded(13, 9, 8))
			p := seeded(13, 9, 8)
			p.Workers = 4
			par := mustGrid(p)

			for i := 0; i < 50; i++ {
				Expect(seq.Step(dt)).To(Succeed())
				Expect(par.Step(dt)).To(Succeed())
			}
			Expect(par.cells).To(Equal(seq.cells))
		})

		It("should read only pre-step speeds", func() {
			p := seeded(3, 1, 1)
			p.Init = InitRest
			p.Pacemakers = []Pacemaker{{X: 0, Y: 0, Speed: 1}}
			g := mustGrid(p)

			Expect(g.Step(0.5)).To(Succeed())

			// (1,0) moves toward the mean of its neighbors; (2,0) only sees
			// (1,0)'s speed from before the step, which was zero.
			Expect(g.At(1, 0).Speed).To(BeNumerically("~", 0.5*0.3*0.5, 1e-12))
			Expect(g.At(2, 0).Speed).To(BeZero())
		})

		It("should keep pacemaker speeds bit-identical", func() {
			g := mustGrid(seeded(11, 7, 5))
			for i := 0; i < 500; i++ {
				Expect(g.Step(dt)).To(Succeed())
			}
			for _, pm := range g.Pacemakers() {
				Expect(g.At(pm.X, pm.Y).Speed).To(Equal(pm.Speed))
			}
		})

		It("should keep every phase in [0, 2π)", func() {
			g := mustGrid(seeded(10, 8, 77))
			for i := 0; i < 300; i++ {
				Expect(g.Step(dt)).To(Succeed())
				g.Each(func(c Cell) {
					for k := 0; k < 2; k++ {
						Expect(c.Phase[k]).To(BeNumerically(">=", 0))
						Expect(c.Phase[k]).To(BeNumerically("<", TwoPi))
					}
				})
			}
		})

		It("should propagate pacemaker influence outward", func() {
			p := seeded(5, 5, 1)
			p.Init = InitRest
			g := mustGrid(p)
			Expect(g.Pacemakers()).To(Equal([]Pacemaker{
				{X: 2, Y: 2, Speed: TwoPi},
				{X: 3, Y: 2, Speed: -TwoPi},
			}))

			for i := 0; i < 60; i++ {
				Expect(g.Step(dt)).To(Succeed())
			}
			early := g.At(1, 2).Speed

			for i := 0; i < 540; i++ {
				Expect(g.Step(dt)).To(Succeed())
			}

			nearLeft, nearRight := g.At(1, 2).Speed, g.At(4, 2).Speed
			Expect(nearLeft).To(BeNumerically(">", 0.5))
			Expect(nearRight).To(BeNumerically("<", -0.5))
			Expect(nearLeft).To(BeNumerically(">", early))

			Expect(math.Abs(g.At(0, 0).Speed)).To(BeNumerically("<", math.Abs(nearLeft)))
			Expect(math.Abs(g.At(4, 0).Speed)).To(BeNumerically("<", math.Abs(nearRight)))
			Expect(g.At(0, 0).Speed).To(BeNumerically(">", 0))
			Expect(g.At(4, 0).Speed).To(BeNumerically("<", 0))
		})

		It("should freeze a lone unlocked cell", func() {
			p := seeded(1, 1, 9)
			p.Pacemakers = []Pacemaker{}
			g := mustGrid(p)
			before := g.At(0, 0).Speed

			for i := 0; i < 10; i++ {
				Expect(g.Step(dt)).To(Succeed())
			}

			after := g.At(0, 0)
			Expect(after.Speed).To(Equal(before))
			Expect(math.IsNaN(after.Phase[0])).To(BeFalse())
		})

		It("should lock a default 1x1 grid as the left pacemaker", func() {
			g := mustGrid(seeded(1, 1, 9))
			Expect(g.At(0, 0).Locked).To(BeTrue())
			Expect(g.Step(dt)).To(Succeed())
			Expect(g.At(0, 0).Speed).To(Equal(TwoPi))
		})

		DescribeTable("rejecting bad timesteps without mutating",
			func(step float64, want error) {
				g := mustGrid(seeded(5, 5, 2))
				before := append([]Oscillator(nil), g.cells...)

				Expect(g.Step(step)).To(MatchError(want))
				Expect(g.cells).To(Equal(before))
			},
			Entry("NaN", math.NaN(), ErrInvalidTimestep),
			Entry("negative", -0.1, ErrInvalidTimestep),
			Entry("infinite", math.Inf(1), ErrInvalidTimestep),
			Entry("full turn per step", 1.0, ErrPhaseOverrun),
			Entry("overshooting relaxation", 4.0, ErrUnstable),
		)

		It("should accept a zero timestep", func() {
			g := mustGrid(seeded(4, 4, 2))
			before := append([]Oscillator(nil), g.cells...)
			Expect(g.Step(0)).To(Succeed())
			Expect(g.cells).To(Equal(before))
		})
	})
})
