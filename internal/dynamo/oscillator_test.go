package dynamo

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Oscillator", func() {
	var (
		o *Oscillator
		c Coupling
	)

	BeforeEach(func() {
		o = &Oscillator{Neighbors: 8, Speed: 1}
		c = DefaultCoupling()
	})

	It("should relax speed toward the neighbor mean", func() {
		for i := 0; i < 8; i++ {
			o.AddNeighbor(2)
		}
		Expect(o.NeighborSum()).To(Equal(16.0))

		o.Advance(0.1, c)

		Expect(o.Speed).To(BeNumerically("~", 1.03, 1e-12))
		Expect(o.NeighborSum()).To(BeZero())
	})

	It("should integrate both hands from the updated speed", func() {
		o.Speed = 2
		for i := 0; i < 8; i++ {
			o.AddNeighbor(2)
		}

		o.Advance(0.5, c)

		Expect(o.Phase[0]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(o.Phase[1]).To(BeNumerically("~", 1.0/60, 1e-12))
	})

	It("should keep a locked speed and still clear the sum", func() {
		o.Locked = true
		o.Speed = TwoPi
		o.AddNeighbor(-100)

		o.Advance(1.0/60, c)

		Expect(o.Speed).To(Equal(TwoPi))
		Expect(o.NeighborSum()).To(BeZero())
		Expect(o.Phase[0]).To(BeNumerically("~", TwoPi/60, 1e-12))
	})

	It("should freeze speed when there are no neighbors", func() {
		o.Neighbors = 0
		o.Speed = 3
		o.AddNeighbor(5)

		o.Advance(0.1, c)

		Expect(o.Speed).To(Equal(3.0))
		Expect(o.NeighborSum()).To(BeZero())
	})

	It("should wrap a forward phase once", func() {
		o.Locked = true
		o.Speed = 1
		o.Phase[0] = TwoPi - 0.05

		o.Advance(0.1, c)

		Expect(o.Phase[0]).To(BeNumerically("~", 0.05, 1e-12))
	})

	It("should wrap a backward phase once", func() {
		o.Locked = true
		o.Speed = -1
		o.Phase[0] = 0.05

		o.Advance(0.1, c)

		Expect(o.Phase[0]).To(BeNumerically("~", TwoPi-0.05, 1e-12))
	})

	DescribeTable("wrapPhase",
		func(in float64) {
			out := wrapPhase(in)
			Expect(out).To(BeNumerically(">=", 0))
			Expect(out).To(BeNumerically("<", TwoPi))
		},
		Entry("zero", 0.0),
		Entry("exactly one turn", TwoPi),
		Entry("just over one turn", TwoPi+1e-9),
		Entry("just under zero", -1e-9),
		Entry("tiny negative rounding to a full turn", -1e-18),
		Entry("almost two turns", 2*TwoPi-1e-6),
		Entry("almost minus one turn", -TwoPi+1e-6),
	)

	It("should not reduce more than one turn", func() {
		Expect(wrapPhase(TwoPi + 7)).To(BeNumerically("~", 7, 1e-12))
	})
})
