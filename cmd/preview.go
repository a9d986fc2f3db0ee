package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/integrals/internal/config"
	"github.com/abhisek/integrals/internal/problemgen"
	"github.com/abhisek/integrals/internal/quiz"
	"github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/symbolic"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play a batch in line mode (no TUI)",
	Long: `Answer a batch of exercises on the command line.

Type an option number (1-4), letter (a-d) or value to answer. Other
commands: s (steps), g (plot), h/l (previous/next), new [N], q (quit).`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	p := &previewer{
		ctrl: newController(cfg, st.EventRepo()),
		cfg:  cfg,
		out:  cmd.OutOrStdout(),
	}
	return p.run(cmd.Context(), cmd.InOrStdin())
}

// previewer runs the quiz as a read-eval-print loop over in and out.
type previewer struct {
	ctrl *quiz.Controller
	cfg  config.Config
	out  io.Writer
}

func (p *previewer) run(ctx context.Context, in io.Reader) error {
	if err := p.ctrl.NewBatch(ctx, p.cfg.ExerciseCount); err != nil {
		return err
	}
	p.printExercise()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(p.out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			break
		}
		quit, err := p.handle(ctx, strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	p.printSummary()
	return scanner.Err()
}

// handle runs one input line and reports whether the loop should end.
// Only batch generation failures are returned as errors.
func (p *previewer) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "?", "help":
		fmt.Fprintln(p.out, "1-4 / a-d / value: answer   s: steps   g: plot   h/l: prev/next   new [N]: new batch   q: quit")
	case "s", "steps":
		lines, err := p.ctrl.ShowSteps()
		if err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			break
		}
		for _, l := range lines {
			fmt.Fprintln(p.out, "  "+l)
		}
	case "g", "plot":
		pl, err := p.ctrl.ShowPlot(p.cfg.Plot.Width, p.cfg.Plot.Height)
		if err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			break
		}
		fmt.Fprintln(p.out, pl.Render())
	case "h", "prev":
		p.ctrl.Navigate(session.DirPrev)
		p.printExercise()
	case "l", "next":
		p.ctrl.Navigate(session.DirNext)
		p.printExercise()
	case "new":
		count := p.cfg.ExerciseCount
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(p.out, "Invalid count %q\n", fields[1])
				break
			}
			count = session.ClampCount(n)
		}
		if err := p.ctrl.NewBatch(ctx, count); err != nil {
			return false, err
		}
		p.printExercise()
	default:
		p.answer(ctx, line)
	}
	return false, nil
}

func (p *previewer) answer(ctx context.Context, input string) {
	ex, idx, ok := p.ctrl.Current()
	if !ok {
		return
	}
	value, err := problemgen.ParseChoice(input, &ex)
	if err != nil {
		fmt.Fprintf(p.out, "%v (type ? for help)\n", err)
		return
	}
	if err := p.ctrl.Select(idx, value); err != nil {
		fmt.Fprintf(p.out, "Error: %v\n", err)
		return
	}

	res, err := p.ctrl.CheckAnswer(ctx)
	if errors.Is(err, session.ErrNoSelection) {
		fmt.Fprintln(p.out, "Select an option first")
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "Error: %v\n", err)
		return
	}

	if !res.Applied {
		fmt.Fprint(p.out, "Already answered. ")
	}
	if res.Correct() {
		fmt.Fprintln(p.out, "\033[32m✓ Correct!\033[0m")
	} else {
		fmt.Fprintf(p.out, "\033[31m✗ Wrong.\033[0m Correct answer: %s\n", symbolic.FormatValue(res.CorrectValue))
	}
	for _, l := range p.ctrl.Progress().Lines() {
		fmt.Fprintln(p.out, l)
	}

	if res.Applied && idx < p.ctrl.State().Total()-1 {
		p.ctrl.Navigate(session.DirNext)
		p.printExercise()
	}
}

func (p *previewer) printExercise() {
	ex, idx, ok := p.ctrl.Current()
	if !ok {
		return
	}
	state := p.ctrl.State()

	fmt.Fprintf(p.out, "\n── Exercise %d of %d (%s) ──\n", idx+1, state.Total(), ex.Kind.Name())
	fmt.Fprintln(p.out, ex.Statement)
	for i, o := range ex.Options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, symbolic.FormatValue(o))
	}
	if state.Answered[idx] {
		fmt.Fprintf(p.out, "(answered %s: %s)\n", state.Outcomes[idx], symbolic.FormatValue(state.Checked[idx]))
	}
}

func (p *previewer) printSummary() {
	sum := p.ctrl.Summary()
	if sum == nil {
		return
	}
	fmt.Fprintf(p.out, "── Summary: %d/%d correct, %d/%d answered ──\n",
		sum.Correct, sum.Answered, sum.Answered, sum.Total)
	for _, kr := range sum.PerKind {
		fmt.Fprintf(p.out, "  %-16s %d/%d\n", kr.Kind.Name(), kr.Correct, kr.Attempted)
	}
}
