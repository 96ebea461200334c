package aoc

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"
	"tailscale.com/util/deephash"
)

// SampleMode controls whether parts are run against their samples.
type SampleMode int

const (
	// SamplesOff runs the real input only.
	SamplesOff SampleMode = iota
	// SamplesCheck checks each part's sample before running the real input.
	SamplesCheck
	// SamplesOnly runs samples and never loads the real input.
	SamplesOnly
)

// PartResult is one part's answer and the time it took.
type PartResult struct {
	Part    string
	Answer  Answer
	Elapsed time.Duration
}

// DayResult holds the results of one day's run.
type DayResult struct {
	Day   int
	Parts []PartResult
	Total time.Duration
}

// Runner dispatches days to their solver parts and prints the answers.
type Runner struct {
	Year    int
	Out     io.Writer
	Inputs  InputSource
	Log     zerolog.Logger
	Samples SampleMode

	// Part, if non-empty, restricts the run to that part.
	Part string

	// Expected holds known answers by day, one per part in order. Mismatches
	// are logged.
	Expected func(day int) []string
}

// Run runs every part of day d and prints
//
//	<day>:<part> — <label>: <value>
//	Part <part> in <duration>
//
// for each, followed by "Done in <duration>". Nothing is printed if d has no
// solver or its input cannot be loaded.
func (r *Runner) Run(ctx context.Context, reg *Registry, d int) (DayResult, error) {
	res := DayResult{Day: d}
	parts, err := reg.Parts(d)
	if err != nil {
		return res, err
	}
	if r.Part != "" {
		parts = filterParts(parts, r.Part)
		if len(parts) == 0 {
			return res, zerr.With(zerr.With(zerr.Wrap(ErrNoSuchPart, fmt.Sprintf("day %d part %s", d, r.Part)), "day", d), "part", r.Part)
		}
	}

	if r.Samples != SamplesOff {
		for _, pt := range parts {
			if err := r.checkSample(ctx, reg, pt); err != nil {
				return res, err
			}
		}
		if r.Samples == SamplesOnly {
			return res, nil
		}
	}

	input, err := r.Inputs.Input(ctx, r.Year, d)
	if err != nil {
		return res, err
	}
	if e := r.Log.Debug(); e.Enabled() {
		e.Int("day", d).Int("bytes", len(input)).Str("fingerprint", deephash.Hash(&input).String()).Msg("input loaded")
	}

	var expected []string
	if r.Expected != nil {
		expected = r.Expected(d)
	}

	p := &Puzzle{Year: r.Year, Day: d, input: input, log: r.Log}
	start := time.Now()
	for i, pt := range parts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t0 := time.Now()
		ans, err := solve(reg, pt, p)
		if err != nil {
			return res, err
		}
		elapsed := time.Since(t0)
		res.Parts = append(res.Parts, PartResult{Part: pt.Part, Answer: ans, Elapsed: elapsed})
		fmt.Fprintf(r.Out, "%d:%s — %s\n", d, pt.Part, ans)
		fmt.Fprintf(r.Out, "Part %s in %v\n", pt.Part, elapsed.Round(time.Microsecond))

		if idx := partIndex(pt, i); idx < len(expected) && expected[idx] != "" {
			got := fmt.Sprint(ans.Value)
			if got != expected[idx] {
				r.Log.Warn().Int("day", d).Str("part", pt.Part).Str("got", got).Str("want", expected[idx]).Msg("answer differs from known answer")
			} else {
				r.Log.Debug().Int("day", d).Str("part", pt.Part).Msg("answer matches known answer")
			}
		}
	}
	res.Total = time.Since(start)
	fmt.Fprintf(r.Out, "Done in %v\n", res.Total.Round(time.Microsecond))
	return res, nil
}

// RunAll runs every registered day in order, separated by blank lines. It
// stops at the first error.
func (r *Runner) RunAll(ctx context.Context, reg *Registry) ([]DayResult, error) {
	var out []DayResult
	for i, d := range reg.Days() {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		res, err := r.Run(ctx, reg, d)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *Runner) checkSample(ctx context.Context, reg *Registry, pt Part) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sample, ok := reg.Sample(pt)
	if !ok {
		if r.Samples == SamplesOnly {
			return zerr.With(zerr.Wrap(ErrNoSample, pt.Name), "method", pt.Name)
		}
		r.Log.Warn().Str("method", pt.Name).Msg("no sample, skipping check")
		return nil
	}
	p := &Puzzle{Year: r.Year, Day: pt.Day, SampleMode: true, input: []byte(sample.Input), log: r.Log}
	t0 := time.Now()
	ans, err := solve(reg, pt, p)
	if err != nil {
		return err
	}
	elapsed := time.Since(t0).Round(time.Microsecond)
	if got := fmt.Sprint(ans.Value); got != sample.Want {
		fmt.Fprintf(r.Out, "%d:%s sample — %s: %v ❌; want %v\n", pt.Day, pt.Part, ans.Label, got, sample.Want)
		return zerr.With(zerr.With(zerr.With(zerr.Wrap(ErrSampleMismatch, pt.Name), "method", pt.Name), "got", got), "want", sample.Want)
	}
	fmt.Fprintf(r.Out, "%d:%s sample — %s ✅ (%v)\n", pt.Day, pt.Part, ans, elapsed)
	return nil
}

// solve runs pt, turning a panic in the solver into an error.
func solve(reg *Registry, pt Part, p *Puzzle) (ans Answer, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = zerr.Wrap(ErrSolverFailed, fmt.Sprintf("day %d part %s", pt.Day, pt.Part))
			err = zerr.With(zerr.With(zerr.With(err, "day", pt.Day), "part", pt.Part), "panic", fmt.Sprint(v))
		}
	}()
	return reg.Solve(pt, p), nil
}

func filterParts(parts []Part, part string) []Part {
	var out []Part
	for _, pt := range parts {
		if pt.Part == part {
			out = append(out, pt)
		}
	}
	return out
}

// partIndex maps a part to its slot in the known answers: numeric part names
// map to part-1, anything else to its position.
func partIndex(pt Part, pos int) int {
	if n, err := strconv.Atoi(pt.Part); err == nil && n > 0 {
		return n - 1
	}
	return pos
}
