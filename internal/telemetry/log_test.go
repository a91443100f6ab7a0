package telemetry

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"burnscar/internal/sims/wildfire"
)

var _ = Describe("LogRecorder", func() {
	It("should print the fire location and node count", func() {
		var buf bytes.Buffer
		r := NewLogRecorder(log.New(&buf, "", 0))

		r.RecordFire(wildfire.FireEvent{Step: 4, X: 2, Y: 3.5, Radius: 1.25, Affected: 7})

		Expect(buf.String()).To(Equal("step 4: fire at (2,3.5) radius 1.250 with 7 nodes inflamed\n"))
	})
})

var _ = Describe("Multi", func() {
	It("should forward to every recorder and skip nil entries", func() {
		a := &Counter{}
		b := &Counter{}
		m := Multi{a, nil, b}

		m.RecordFire(wildfire.FireEvent{Affected: 3})
		m.RecordFire(wildfire.FireEvent{Affected: 2})

		Expect(a.Fires).To(Equal(2))
		Expect(a.Burned).To(Equal(5))
		Expect(*b).To(Equal(*a))
	})
})
