package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/integrals/internal/app"
	"github.com/abhisek/integrals/internal/config"
	"github.com/abhisek/integrals/internal/plot"
	"github.com/abhisek/integrals/internal/problemgen"
	"github.com/abhisek/integrals/internal/quiz"
	quizscreen "github.com/abhisek/integrals/internal/screens/quiz"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/symbolic"
)

// runApp opens the attempt log, builds the controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Controller: newController(cfg, st.EventRepo()),
		Events:     st.EventRepo(),
		Count:      cfg.ExerciseCount,
		Plot: quizscreen.PlotSize{
			Width:  cfg.Plot.Width,
			Height: cfg.Plot.Height,
		},
	})
}

// newController wires the generator, oracles and attempt log. events may
// be nil.
func newController(cfg config.Config, events store.EventRepo) *quiz.Controller {
	kernel := symbolic.NewKernel()

	genCfg := problemgen.Config{}
	if cfg.VerifyWithOracle {
		genCfg = problemgen.DefaultConfig(kernel)
	}

	var gen problemgen.Generator
	if cfg.Seed != 0 {
		gen = problemgen.NewSeeded(cfg.Seed, genCfg)
	} else {
		gen = problemgen.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), genCfg)
	}

	return quiz.New(quiz.Options{
		Generator:   gen,
		Oracle:      kernel,
		Sampler:     plot.PointSampler{},
		Events:      events,
		PlotSamples: cfg.Plot.Samples,
	})
}
