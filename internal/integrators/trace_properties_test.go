package integrators_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

var _ = Describe("Tracer", func() {
	var (
		reg  *field.Registry
		rect grid.Rect
	)

	BeforeEach(func() {
		reg = field.NewRegistry()
		var err error
		rect, err = grid.NewRect(-3, 3, -3, 3)
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("keeps every point inside the rectangle and within the step budget",
		func(name, stepper string, seed integrators.Point, step float64, maxSteps int) {
			eq, err := reg.Get(name)
			Expect(err).NotTo(HaveOccurred())
			s, err := integrators.ByName(stepper)
			Expect(err).NotTo(HaveOccurred())

			traj, err := integrators.NewTracer(s).Trace(context.Background(), eq, seed, step, rect, maxSteps)
			Expect(err).NotTo(HaveOccurred())

			Expect(traj.Len()).To(BeNumerically("<=", 2*maxSteps+1))
			Expect(traj.Backward).To(BeNumerically("<=", maxSteps))
			Expect(traj.Forward).To(BeNumerically("<=", maxSteps))
			for _, p := range traj.Points {
				Expect(rect.Contains(p.X, p.Y)).To(BeTrue(), "point %v escaped %v", p, rect)
			}
		},
		Entry("default, euler", "default", "euler", integrators.Point{X: 1, Y: 1}, 0.01, 2000),
		Entry("linear blows up", "linear", "euler", integrators.Point{X: 0, Y: 1}, 0.05, 500),
		Entry("rational near the pole", "rational", "euler", integrators.Point{X: 1, Y: 0.5}, 0.01, 1000),
		Entry("logistic, rk4", "logistic", "rk4", integrators.Point{X: 0, Y: 0.1}, 0.1, 50),
		Entry("tiny budget", "default", "euler", integrators.Point{X: 0, Y: 0}, 1e-4, 3),
		Entry("seed on the boundary", "linear", "euler", integrators.Point{X: 3, Y: -3}, 0.1, 10),
	)

	It("retains the point where the slope becomes undefined and nothing after it", func() {
		eq := field.Equation{Name: "cliff", Label: "log(1-x)", Fn: func(x, y float64) float64 {
			return math.Log(1 - x)
		}}

		traj, err := integrators.NewTracer(integrators.NewEuler()).
			Trace(context.Background(), eq, integrators.Point{}, 0.5, rect, 100)
		Expect(err).NotTo(HaveOccurred())

		Expect(traj.ForwardStop).To(Equal(integrators.StopUndefined))
		Expect(traj.Forward).To(Equal(2))
		Expect(traj.Points[traj.Len()-1].X).To(Equal(1.0))
	})

	It("includes the seed exactly once between the halves", func() {
		eq, _ := reg.Get("default")
		seed := integrators.Point{X: 0.5, Y: -0.5}

		traj, err := integrators.NewTracer(nil).Trace(context.Background(), eq, seed, 0.05, rect, 40)
		Expect(err).NotTo(HaveOccurred())

		got, ok := traj.Seed()
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(seed))
		Expect(traj.Points[traj.Backward]).To(Equal(seed))
		Expect(traj.Xs()).To(HaveLen(traj.Len()))
		Expect(traj.Ys()).To(HaveLen(traj.Len()))
	})

	It("runs the halves independently of each other", func() {
		eq, _ := reg.Get("linear")

		traj, err := integrators.NewTracer(nil).
			Trace(context.Background(), eq, integrators.Point{X: 0, Y: 1}, 0.5, rect, 4)
		Expect(err).NotTo(HaveOccurred())

		Expect(traj.Points[traj.Backward+1:]).To(Equal([]integrators.Point{
			{X: 0.5, Y: 1.5},
			{X: 1.0, Y: 2.5},
		}))
		Expect(traj.ForwardStop).To(Equal(integrators.StopBounds))
	})
})
