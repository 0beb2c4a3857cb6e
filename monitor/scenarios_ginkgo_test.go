package monitor_test

import (
	"github.com/benjaminpotter/go-efsm/monitor"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("two-sided monitor", func() {
	It("stays inconclusive while the run could still go either way, then rejects", func() {
		m := boundedAcceptor()
		mon, err := monitor.New("s0", 0, m)
		Expect(err).NotTo(HaveOccurred())

		v, err := mon.Next('c')
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(monitor.Inconclusive))

		v, err = mon.Next('b')
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(monitor.Inconclusive))

		v, err = mon.Next('c')
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(monitor.Rejected))
	})

	It("accepts once the register runs past the bound that could still send it to the sink", func() {
		m := boundedAcceptor()
		mon, err := monitor.New("s0", 0, m)
		Expect(err).NotTo(HaveOccurred())

		var last monitor.Verdict
		for _, input := range []byte{'b', 'b', 'b', 'b', 'b'} {
			last, err = mon.Next(input)
			Expect(err).NotTo(HaveOccurred())
			if last != monitor.Inconclusive {
				break
			}
		}
		Expect(last).To(Equal(monitor.Accepted))
	})
})
