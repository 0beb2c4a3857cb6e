package efsm_test

import (
	"github.com/benjaminpotter/go-efsm/efsm"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("counting acceptor", func() {
	It("accepts any sequence, since the self-loop is unguarded", func() {
		m := efsm.NewBuilder[int, int, addInputUpdate]().
			WithTransition("Count", efsm.Transition[int, int, addInputUpdate]{
				ToLocation: "Count",
				Enable:     func(int, int) bool { return true },
				Update:     addInputUpdate{},
			}).
			WithAccepting("Count").
			Build()

		Expect(m.Exec("Count", 0, []int{1, 2, 3})).To(BeTrue())
	})
})

var _ = Describe("bounded acceptor", func() {
	var m *efsm.Machine[int, byte, efsm.AddUpdate[int, byte]]

	BeforeEach(func() {
		m = boundedAcceptor()
	})

	It("rejects sequences that overshoot back into a non-accepting sink", func() {
		Expect(m.Exec("s0", 0, []byte{'c', 'b', 'c'})).To(BeFalse())
	})

	It("accepts sequences that end inside the accepting location", func() {
		Expect(m.Exec("s0", 0, []byte{'c', 'b'})).To(BeTrue())
	})

	It("reports a reachability map containing both visited locations", func() {
		safe, err := m.FindNonEmpty("s0")
		Expect(err).NotTo(HaveOccurred())
		Expect(safe).To(HaveKey("s1"))
		Expect(safe).To(HaveKey("s0"))
		Expect(safe["s0"].Contains(0)).To(BeTrue())
	})
})
