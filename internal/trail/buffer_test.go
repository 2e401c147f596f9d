package trail

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/threebody/internal/dynamo"
)

var _ = Describe("Buffer", func() {
	var buf *Buffer

	BeforeEach(func() {
		buf = New(DefaultIndexSet)
	})

	It("sizes itself from the deepest sample index", func() {
		Expect(buf.Cap()).To(Equal(46))
	})

	It("starts with every slot empty", func() {
		for i := 0; i < buf.Cap(); i++ {
			p, ok := buf.SampleAt(i)
			Expect(ok).To(BeTrue())
			Expect(IsSentinel(p)).To(BeTrue(), "slot %d", i)
		}
		Expect(buf.Len()).To(Equal(0))
	})

	It("visits no samples before anything is recorded", func() {
		visited := 0
		buf.Samples(DefaultIndexSet, func(int, dynamo.Vec2) { visited++ })
		Expect(visited).To(BeZero())
	})

	It("stores the newest position at index 0", func() {
		p := dynamo.Vec2{X: 0.5, Y: -0.25}
		buf.Record(p)

		got, ok := buf.SampleAt(0)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(p))
	})

	It("shifts older entries one slot toward the tail", func() {
		for i := 0; i < 10; i++ {
			buf.Record(dynamo.Vec2{X: float64(i)})
		}
		before := make([]dynamo.Vec2, buf.Cap())
		for i := range before {
			before[i], _ = buf.SampleAt(i)
		}

		buf.Record(dynamo.Vec2{X: 100})

		for i := 1; i < buf.Cap(); i++ {
			got, _ := buf.SampleAt(i)
			Expect(got).To(Equal(before[i-1]), "slot %d", i)
		}
	})

	It("discards the tail entry once full", func() {
		small := NewWithCapacity(3)
		for i := 1; i <= 4; i++ {
			small.Record(dynamo.Vec2{X: float64(i)})
		}

		Expect(small.Cap()).To(Equal(3))
		want := []float64{4, 3, 2}
		for i, x := range want {
			got, _ := small.SampleAt(i)
			Expect(got.X).To(Equal(x))
		}
	})

	It("guards out-of-range indices", func() {
		_, ok := buf.SampleAt(buf.Cap())
		Expect(ok).To(BeFalse())
		_, ok = buf.SampleAt(-1)
		Expect(ok).To(BeFalse())
	})

	It("only visits recorded samples at the chosen depths", func() {
		for i := 0; i < 4; i++ {
			buf.Record(dynamo.Vec2{X: float64(i)})
		}

		var depths []int
		buf.Samples(DefaultIndexSet, func(i int, _ dynamo.Vec2) { depths = append(depths, i) })
		Expect(depths).To(Equal([]int{1, 2, 3}))
	})

	It("clones independently", func() {
		buf.Record(dynamo.Vec2{X: 1})
		c := buf.Clone()
		c.Record(dynamo.Vec2{X: 2})

		got, _ := buf.SampleAt(0)
		Expect(got.X).To(Equal(1.0))
		Expect(buf.Len()).To(Equal(1))
		Expect(c.Len()).To(Equal(2))
	})

	It("resets to empty", func() {
		buf.Record(dynamo.Vec2{X: 1})
		buf.Reset()
		Expect(buf.Len()).To(BeZero())
	})
})

var _ = Describe("IndexSet", func() {
	It("accepts the default set", func() {
		Expect(DefaultIndexSet.Validate()).To(Succeed())
		Expect(DefaultIndexSet.Capacity()).To(Equal(46))
	})

	DescribeTable("rejects malformed sets",
		func(indices []int) {
			_, err := NewIndexSet(indices...)
			Expect(err).To(MatchError(ErrInvalidIndexSet))
		},
		Entry("empty", []int{}),
		Entry("negative", []int{-1, 2}),
		Entry("descending", []int{3, 2}),
		Entry("duplicate", []int{1, 1, 2}),
	)

	It("copies its input", func() {
		in := []int{1, 4}
		set, err := NewIndexSet(in...)
		Expect(err).NotTo(HaveOccurred())
		in[0] = 9
		Expect(set[0]).To(Equal(1))
	})
})
