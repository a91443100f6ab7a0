package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"burnscar/internal/core"
	"burnscar/internal/sims/wildfire"
	"burnscar/internal/telemetry"
)

// recordable models forward their fire events to a recorder.
type recordable interface {
	SetRecorder(wildfire.EventRecorder)
}

// timed models report the simulated time since Reset.
type timed interface {
	Time() float64
}

func newRunCmd(opts *options) *cobra.Command {
	var (
		model  string
		steps  int
		seed   int64
		dbPath string
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a single model and report the resulting erodibility field.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			factory, ok := core.Models()[model]
			if !ok {
				return fmt.Errorf("unknown model %q (available: %s)", model, strings.Join(core.ModelNames(), ", "))
			}
			m, err := factory(wildfire.ToMap(cfg))
			if err != nil {
				return err
			}
			m.Reset(seed)

			counter := &telemetry.Counter{}
			recorders := telemetry.Multi{counter}
			if !quiet {
				recorders = append(recorders, telemetry.NewLogRecorder(log.New(cmd.ErrOrStderr(), "", 0)))
			}
			var db *telemetry.SQLiteRecorder
			if dbPath != "" {
				db, err = telemetry.NewSQLiteRecorder(dbPath)
				if err != nil {
					return err
				}
				defer joinClose(&err, db)
				recorders = append(recorders, db)
			}
			if r, ok := m.(recordable); ok {
				r.SetRecorder(recorders)
			}

			if err := runModel(m, steps); err != nil {
				return err
			}
			if db != nil {
				if err := db.Flush(); err != nil {
					return err
				}
			}

			stats := core.Stats(m.Field())
			out := cmd.OutOrStdout()
			size := m.Size()
			fmt.Fprintf(out, "%s %dx%d: %d steps", m.Name(), size.W, size.H, steps)
			if tm, ok := m.(timed); ok {
				fmt.Fprintf(out, ", t=%g", tm.Time())
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "fires=%d burned=%d\n", counter.Fires, counter.Burned)
			fmt.Fprintf(out, "erodibility min=%.4f mean=%.4f max=%.4f\n", stats.Min, stats.Mean, stats.Max)
			if db != nil {
				fmt.Fprintf(out, "events written to %s (run %s)\n", db.Path(), db.RunID())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "wildfire", "registered model to run")
	cmd.Flags().IntVar(&steps, "steps", 200, "number of timesteps to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the configured seed)")
	cmd.Flags().StringVar(&dbPath, "db", "", "write fire events to this SQLite file")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "do not log individual fires")
	return cmd
}

func runModel(m core.Model, steps int) error {
	for i := 0; i < steps; i++ {
		if err := m.Step(); err != nil {
			return fmt.Errorf("%s: %w", m.Name(), err)
		}
	}
	return nil
}

// joinClose closes c and adds any failure to *err.
func joinClose(err *error, c io.Closer) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("close: %w", cerr))
	}
}
