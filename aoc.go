// Package aoc runs Advent of Code solutions: it finds a solver's D{day}p{part}
// methods, loads the day's puzzle input and prints each part's answer with
// its timing.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"
	"golang.org/x/exp/maps"
)

// Answer is the labelled result of one part, printed as "<label>: <value>".
type Answer struct {
	Label string
	Value any
}

func (a Answer) String() string {
	return fmt.Sprintf("%s: %v", a.Label, a.Value)
}

// Puzzle is the input handed to a part.
type Puzzle struct {
	Year       int
	Day        int
	SampleMode bool

	input []byte
	log   zerolog.Logger
}

// NewPuzzle returns a puzzle for input with logging disabled.
func NewPuzzle(year, day int, input []byte) *Puzzle {
	return &Puzzle{Year: year, Day: day, input: input, log: zerolog.Nop()}
}

// Input returns the raw puzzle input.
func (p *Puzzle) Input() []byte {
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.input))
}

// ForLinesY calls onLine for each line of input, including blank ones.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, strings.TrimSuffix(s.Text(), "\r"))
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the non-blank lines of input.
func (p *Puzzle) Lines() []string {
	var out []string
	p.ForLines(func(line string) {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	})
	return out
}

// Sections splits the input into blocks of non-blank lines separated by one
// or more blank lines.
func (p *Puzzle) Sections() [][]string {
	var (
		out [][]string
		cur []string
	)
	p.ForLines(func(line string) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			return
		}
		cur = append(cur, line)
	})
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Grid returns the non-blank lines of input as a byte grid.
func (p *Puzzle) Grid() Grid[byte] {
	lines := p.Lines()
	g := make(Grid[byte], len(lines))
	for y, line := range lines {
		g[y] = []byte(line)
	}
	return g
}

// Debugf logs at debug level, but only while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debug().Int("day", p.Day).Msgf(format, args...)
	}
}

// Sample is an example input with its expected answer, taken from a part's
// doc comment.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

// extractSamples returns the samples found in the doc comments of the
// functions declared in src, keyed by function name. A sample without an
// input reuses the previous sample's input.
func extractSamples(filename string, src []byte) (map[string]Sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse source for samples"), "file", filename)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.Input = Or(s.Input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.Input
			break
		}
	}
	return samples, nil
}

// Part identifies one registered part of a day.
type Part struct {
	Day  int
	Part string
	Name string // method name

	index int
}

type day struct {
	day   int
	parts []Part
}

var (
	methodRx   = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	partFnType = reflect.TypeOf((func(*Puzzle) Answer)(nil))
)

// Registry maps days to the parts of a solver.
type Registry struct {
	solver  reflect.Value
	days    map[int]day
	samples map[string]Sample
}

// NewRegistry registers every method of slvr named D{day}p{part}. The methods
// must have the signature func(*Puzzle) Answer. Samples are read from the .go
// files at the root of src, which may be nil.
func NewRegistry(slvr any, src fs.FS) (*Registry, error) {
	v := reflect.ValueOf(slvr)
	vt := v.Type()
	byDays := map[int][]Part{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt := v.Method(i).Type(); mt != partFnType {
			return nil, zerr.With(zerr.Wrap(ErrBadSolver, mn), "type", mt.String())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil || d < 1 || d > 25 {
			return nil, zerr.With(zerr.Wrap(ErrBadSolver, mn), "day", matches[1])
		}
		byDays[d] = append(byDays[d], Part{
			Day:   d,
			Part:  matches[2],
			Name:  mn,
			index: i,
		})
	}
	r := &Registry{
		solver:  v,
		days:    make(map[int]day, len(byDays)),
		samples: make(map[string]Sample),
	}
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j Part) int {
			return strings.Compare(i.Part, j.Part)
		})
		r.days[d] = day{day: d, parts: parts}
	}
	if src == nil {
		return r, nil
	}

	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list solver sources")
	}
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read solver source"), "file", name)
		}
		samples, err := extractSamples(path.Base(name), b)
		if err != nil {
			return nil, err
		}
		maps.Copy(r.samples, samples)
	}
	return r, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

// Parts returns the parts registered for d, ordered by part name.
func (r *Registry) Parts(d int) ([]Part, error) {
	dd, ok := r.days[d]
	if !ok {
		return nil, &InvalidDayError{Arg: strconv.Itoa(d), Registered: r.Days()}
	}
	return slices.Clone(dd.parts), nil
}

// Sample returns the sample declared on pt's doc comment.
func (r *Registry) Sample(pt Part) (Sample, bool) {
	s, ok := r.samples[pt.Name]
	return s, ok
}

// Solve runs pt against p.
func (r *Registry) Solve(pt Part, p *Puzzle) Answer {
	out := r.solver.Method(pt.index).Call([]reflect.Value{reflect.ValueOf(p)})
	return out[0].Interface().(Answer)
}

// ParseDay parses a day argument, which must be a number between 1 and 25.
func ParseDay(arg string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || d < 1 || d > 25 {
		return 0, &InvalidDayError{Arg: arg}
	}
	return d, nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
