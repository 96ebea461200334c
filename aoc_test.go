package aoc

import (
	"errors"
	"reflect"
	"slices"
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    Sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: Sample{
				Want: "1",
				Input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line

after-blank-line
*/`,
			want: Sample{
				Want: "1234",
				Input: `multi-line-input
other-line

after-blank-line
`,
			},
		},
		{
			comment: `// want=42`,
			want:    Sample{Want: "42"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %q, %v; want %q", tt.comment, got, ok, tt.want)
		}
	}

	if _, ok := parseSample("// D1p1 solves part one."); ok {
		t.Error("parseSample matched a comment without want=")
	}
}

const testSolverSrc = `package fake

/*
want=3

a
b

c
*/
func (testSolver) D1p1(p *Puzzle) Answer { return Answer{} }

// want=7
func (testSolver) D1p2(p *Puzzle) Answer { return Answer{} }

// D2p1 has no sample.
func (testSolver) D2p1(p *Puzzle) Answer { return Answer{} }
`

type testSolver struct{}

func (testSolver) D1p1(p *Puzzle) Answer {
	p.Debugf("lines: %v", p.Lines())
	return Answer{Label: "Lines", Value: len(p.Lines())}
}

func (testSolver) D1p2(p *Puzzle) Answer {
	return Answer{Label: "Bytes", Value: len(p.Input())}
}

func (testSolver) D2p1(p *Puzzle) Answer {
	panic("boom")
}

func (testSolver) D3p2(p *Puzzle) Answer {
	return Answer{Label: "Sections", Value: len(p.Sections())}
}

func (testSolver) D3p1(p *Puzzle) Answer {
	return Answer{Label: "Grid", Value: p.Grid().Size()}
}

// Helper is not a part.
func (testSolver) Helper() int { return 0 }

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(testSolver{}, fstest.MapFS{
		"solver.go":      {Data: []byte(testSolverSrc)},
		"solver_test.go": {Data: []byte("not go at all")},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples("solver.go", []byte(testSolverSrc))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Sample{
		"D1p1": {Want: "3", Input: "a\nb\n\nc\n"},
		"D1p2": {Want: "7", Input: "a\nb\n\nc\n"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractSamples = %q; want %q", got, want)
	}

	if _, err := extractSamples("bad.go", []byte("package")); err == nil {
		t.Error("extractSamples accepted invalid source")
	}
}

func TestNewRegistry(t *testing.T) {
	reg := newTestRegistry(t)

	if got, want := reg.Days(), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Days() = %v; want %v", got, want)
	}

	parts, err := reg.Parts(3)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, pt := range parts {
		names = append(names, pt.Name)
	}
	if want := []string{"D3p1", "D3p2"}; !slices.Equal(names, want) {
		t.Errorf("Parts(3) = %v; want %v", names, want)
	}

	parts, _ = reg.Parts(1)
	if s, ok := reg.Sample(parts[1]); !ok || s.Want != "7" {
		t.Errorf("Sample(D1p2) = %v, %v; want want=7", s, ok)
	}
	parts, _ = reg.Parts(2)
	if _, ok := reg.Sample(parts[0]); ok {
		t.Error("Sample(D2p1) found a sample")
	}

	_, err = reg.Parts(4)
	var dayErr *InvalidDayError
	if !errors.As(err, &dayErr) {
		t.Fatalf("Parts(4) error = %v; want InvalidDayError", err)
	}
	if !slices.Equal(dayErr.Registered, []int{1, 2, 3}) {
		t.Errorf("Registered = %v; want [1 2 3]", dayErr.Registered)
	}
}

type badSolver struct{}

func (badSolver) D1p1() any { return nil }

type outOfRangeSolver struct{}

func (outOfRangeSolver) D26p1(p *Puzzle) Answer { return Answer{} }

func TestNewRegistryRejectsBadMethods(t *testing.T) {
	for _, slvr := range []any{badSolver{}, outOfRangeSolver{}} {
		if _, err := NewRegistry(slvr, nil); !errors.Is(err, ErrBadSolver) {
			t.Errorf("NewRegistry(%T) error = %v; want %v", slvr, err, ErrBadSolver)
		}
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "25", want: 25},
		{arg: " 7 ", want: 7},
		{arg: "0", wantErr: true},
		{arg: "26", wantErr: true},
		{arg: "-1", wantErr: true},
		{arg: "one", wantErr: true},
		{arg: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDay(tt.arg)
		if tt.wantErr {
			var dayErr *InvalidDayError
			if !errors.As(err, &dayErr) {
				t.Errorf("ParseDay(%q) error = %v; want InvalidDayError", tt.arg, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDay(%q) = %v, %v; want %v", tt.arg, got, err, tt.want)
		}
	}
}

func TestPuzzleHelpers(t *testing.T) {
	p := NewPuzzle(2023, 1, []byte("ab\r\ncd\n\n\nef\n"))

	if got, want := p.Lines(), []string{"ab", "cd", "ef"}; !slices.Equal(got, want) {
		t.Errorf("Lines() = %q; want %q", got, want)
	}

	sections := p.Sections()
	if len(sections) != 2 || !slices.Equal(sections[0], []string{"ab", "cd"}) || !slices.Equal(sections[1], []string{"ef"}) {
		t.Errorf("Sections() = %q", sections)
	}

	var ys []int
	p.ForLinesY(func(y int, _ string) { ys = append(ys, y) })
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(ys, want) {
		t.Errorf("ForLinesY rows = %v; want %v", ys, want)
	}

	if got, want := p.Grid().Size(), (Pt{2, 3}); got != want {
		t.Errorf("Grid().Size() = %v; want %v", got, want)
	}
}

func TestAnswerString(t *testing.T) {
	a := Answer{Label: "Sum of all of the calibration values", Value: 56049}
	if got, want := a.String(), "Sum of all of the calibration values: 56049"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
