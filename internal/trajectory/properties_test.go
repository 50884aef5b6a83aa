package trajectory_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/trajectory"
)

var _ = Describe("Ideal model", func() {
	DescribeTable("positive metrics for upward launches",
		func(angle int, speed float64) {
			res, err := trajectory.ComputeIdeal(angle, speed)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.TimeOfFlight).To(BeNumerically(">", 0))
			Expect(res.MaxHeight).To(BeNumerically(">", 0))
			Expect(res.Range).To(BeNumerically(">", 0))

			Expect(res.Heights).NotTo(BeEmpty())
			Expect(res.Heights[0]).To(BeNumerically("==", 0))
			Expect(res.Heights[len(res.Heights)-1]).To(BeNumerically("~", 0, speed*res.Dt))
		},
		Entry("shallow", 10, 15.0),
		Entry("flat-ish", 1, 100.0),
		Entry("optimal", 45, 20.0),
		Entry("steep", 80, 50.0),
		Entry("nearly vertical", 89, 5.0),
	)

	It("matches the closed-form regression values", func() {
		res, err := trajectory.ComputeIdeal(45, 20)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.TimeOfFlight).To(BeNumerically("~", 2.886, 1e-3))
		Expect(res.MaxHeight).To(BeNumerically("~", 10.204, 1e-3))
		Expect(res.Range).To(BeNumerically("~", 40.816, 1e-3))
	})

	It("has zero metrics at zero speed", func() {
		res, err := trajectory.ComputeIdeal(30, 0)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.TimeOfFlight).To(BeZero())
		Expect(res.MaxHeight).To(BeZero())
		Expect(res.Range).To(BeZero())
	})

	Context("with a coarse timestep", func() {
		var model *trajectory.Ideal

		BeforeEach(func() {
			cfg := trajectory.DefaultConfig()
			cfg.Dt = 0.05
			model = trajectory.NewIdeal(cfg)
		})

		It("keeps the curve within the closed-form envelope", func() {
			res, err := model.Compute(trajectory.Params{Angle: 45, Speed: 20})
			Expect(err).NotTo(HaveOccurred())

			for _, y := range res.Heights {
				Expect(y).To(BeNumerically(">=", 0))
				Expect(y).To(BeNumerically("<=", res.MaxHeight))
			}
		})
	})
})

var _ = Describe("Drag model", func() {
	It("returns the zero result whenever the mass is zero", func() {
		for _, speed := range []float64{0, 1, 20, 500} {
			for _, angle := range []int{-45, 0, 30, 90} {
				res, err := trajectory.ComputeWithDrag(angle, speed, 0, 0.25)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.IsZero()).To(BeTrue())
			}
		}
	})

	It("has zero metrics at zero speed", func() {
		res, err := trajectory.ComputeWithDrag(30, 0, 1, 0.1)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.TimeOfFlight).To(BeZero())
		Expect(res.MaxHeight).To(BeZero())
		Expect(res.Range).To(BeZero())
	})

	It("flies lower and shorter than the ideal projectile", func() {
		ideal, err := trajectory.ComputeIdeal(45, 20)
		Expect(err).NotTo(HaveOccurred())
		drag, err := trajectory.ComputeWithDrag(45, 20, 1, 0.1)
		Expect(err).NotTo(HaveOccurred())

		Expect(drag.MaxHeight).To(BeNumerically("<", ideal.MaxHeight))
		Expect(drag.Range).To(BeNumerically("<", ideal.Range))
	})

	DescribeTable("converges to the ideal model as m/k grows",
		func(mass, k, tol float64) {
			cfg := trajectory.DefaultConfig()
			cfg.Dt = 0.01

			ideal, err := trajectory.NewIdeal(cfg).Compute(trajectory.Params{Angle: 60, Speed: 25})
			Expect(err).NotTo(HaveOccurred())
			drag, err := trajectory.NewDrag(cfg).Compute(trajectory.Params{Angle: 60, Speed: 25, Mass: mass, Drag: k})
			Expect(err).NotTo(HaveOccurred())

			n := min(len(ideal.Heights), len(drag.Heights))
			Expect(n).To(BeNumerically(">=", len(ideal.Heights)-2))
			for i := 0; i < n; i++ {
				Expect(drag.Heights[i]).To(BeNumerically("~", ideal.Heights[i], tol))
			}
		},
		Entry("m/k = 1e4", 1000.0, 0.1, 0.05),
		Entry("m/k = 1e6", 1e5, 0.1, 0.001),
	)

	It("reports a divergent trajectory instead of looping forever", func() {
		cfg := trajectory.DefaultConfig()
		cfg.MaxSteps = 2000

		_, err := trajectory.NewDrag(cfg).Compute(trajectory.Params{Angle: 70, Speed: 30, Mass: 2, Drag: -5})
		Expect(err).To(MatchError(trajectory.ErrDivergent))

		var divErr *trajectory.DivergentError
		Expect(errors.As(err, &divErr)).To(BeTrue())
		Expect(divErr.Steps).To(Equal(2000))
	})
})
