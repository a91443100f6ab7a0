package telemetry

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"burnscar/internal/sims/wildfire"
)

var _ = Describe("SQLiteRecorder", func() {
	var (
		path     string
		recorder *SQLiteRecorder
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "fires.sqlite3")
		var err error
		recorder, err = NewSQLiteRecorder(path)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(recorder.Close()).To(Succeed())
	})

	It("should assign a run id and keep the path", func() {
		Expect(recorder.RunID()).NotTo(BeEmpty())
		Expect(recorder.Path()).To(Equal(path))
	})

	It("should buffer events until flushed", func() {
		recorder.RecordFire(wildfire.FireEvent{Step: 1, Center: 3, Affected: 2})

		events, err := ReadFireEvents(recorder.DB, recorder.RunID())
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(BeEmpty())

		Expect(recorder.Flush()).To(Succeed())
		events, err = ReadFireEvents(recorder.DB, recorder.RunID())
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(1))
	})

	It("should write a batch once it is full", func() {
		recorder.SetBatchSize(2)
		recorder.RecordFire(wildfire.FireEvent{Step: 1})
		recorder.RecordFire(wildfire.FireEvent{Step: 2})
		recorder.RecordFire(wildfire.FireEvent{Step: 3})

		events, err := ReadFireEvents(recorder.DB, recorder.RunID())
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(2))
	})

	It("should round trip every field of the events of a world run", func() {
		cfg := wildfire.DefaultConfig()
		cfg.Width = 16
		cfg.Height = 16
		cfg.Params.FireFrequency = 0.5
		world, err := wildfire.NewWithConfig(cfg)
		Expect(err).NotTo(HaveOccurred())
		world.Reset(0)
		world.SetRecorder(recorder)

		for i := 0; i < 60; i++ {
			Expect(world.Step()).To(Succeed())
		}
		Expect(recorder.Flush()).To(Succeed())

		events, err := ReadFireEvents(recorder.DB, recorder.RunID())
		Expect(err).NotTo(HaveOccurred())
		Expect(events).NotTo(BeEmpty())
		Expect(events).To(Equal(world.Events()))
	})

	It("should ignore events after close", func() {
		Expect(recorder.Close()).To(Succeed())
		recorder.RecordFire(wildfire.FireEvent{Step: 1})
		Expect(recorder.Flush()).To(Succeed())
	})
})
