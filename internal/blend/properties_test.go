package blend

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const tol = 1e-9

func randVec(r *rand.Rand) vec {
	return vec{r.Float64()*20 - 10, r.Float64()*20 - 10}
}

var _ = Describe("Blendable arithmetic", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	It("adds commutatively", func() {
		for i := 0; i < 100; i++ {
			a, b := randVec(r), randVec(r)
			ab, ba := a.Add(b), b.Add(a)
			Expect(ab.X).To(BeNumerically("~", ba.X, tol))
			Expect(ab.Y).To(BeNumerically("~", ba.Y, tol))
		}
	})

	It("adds associatively", func() {
		for i := 0; i < 100; i++ {
			a, b, c := randVec(r), randVec(r), randVec(r)
			left := a.Add(b).Add(c)
			right := a.Add(b.Add(c))
			Expect(left.X).To(BeNumerically("~", right.X, tol))
			Expect(left.Y).To(BeNumerically("~", right.Y, tol))
		}
	})

	It("multiplies commutatively", func() {
		for i := 0; i < 100; i++ {
			a, b := randVec(r), randVec(r)
			ab, ba := a.Mul(b), b.Mul(a)
			Expect(ab.X).To(BeNumerically("~", ba.X, tol))
			Expect(ab.Y).To(BeNumerically("~", ba.Y, tol))
		}
	})

	It("lerps to the endpoints", func() {
		for i := 0; i < 100; i++ {
			a, b := randVec(r), randVec(r)
			Expect(a.Lerp(b, 0).X).To(BeNumerically("~", a.X, tol))
			Expect(a.Lerp(b, 0).Y).To(BeNumerically("~", a.Y, tol))
			Expect(a.Lerp(b, 1).X).To(BeNumerically("~", b.X, tol))
			Expect(a.Lerp(b, 1).Y).To(BeNumerically("~", b.Y, tol))
		}
	})
})

var _ = Describe("Control evaluation", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	It("is invariant under registration order", func() {
		inputs := make([]Input[vec], 8)
		for i := range inputs {
			inputs[i] = NewInput(randVec(r), randVec(r))
		}

		forward := New[vec]()
		for _, in := range inputs {
			in := in
			forward.AddSource(func() Input[vec] { return in })
		}

		reversed := New[vec]()
		for i := len(inputs) - 1; i >= 0; i-- {
			in := inputs[i]
			reversed.AddSource(func() Input[vec] { return in })
		}

		shuffled := New[vec]()
		for _, i := range r.Perm(len(inputs)) {
			in := inputs[i]
			shuffled.AddSource(func() Input[vec] { return in })
		}

		want, ok := forward.Evaluate()
		Expect(ok).To(BeTrue())

		for _, ctl := range []*Control[vec]{reversed, shuffled} {
			got, ok := ctl.Evaluate()
			Expect(ok).To(BeTrue())
			Expect(got.X).To(BeNumerically("~", want.X, tol))
			Expect(got.Y).To(BeNumerically("~", want.Y, tol))
		}
	})

	It("invokes sources in registration order", func() {
		var order []int
		ctl := New[vec]()
		for i := 0; i < 5; i++ {
			i := i
			ctl.AddSource(func() Input[vec] {
				order = append(order, i)
				return NewInput(vec{}, vec{})
			})
		}

		_, ok := ctl.Evaluate()
		Expect(ok).To(BeTrue())
		Expect(order).To(Equal([]int{0, 1, 2, 3, 4}))
	})
})
