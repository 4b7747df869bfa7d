// Package aoc is the harness for Maisem's Advent of Code 2022 solutions
// (forked from bradfitz/aoc). A year's solver is a struct embedding
// *Puzzle with methods named D{day}p{part}; Run discovers and runs them.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

// Puzzle is the per-day state handed to a solver. SampleMode is set while the
// embedded sample is being checked.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the sample input in sample mode and the real puzzle input
// otherwise. The real input is cached on disk under {year}/{day}.input.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(
		fmt.Sprintf("%d/%d.input", p.year, p.day.day),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day),
	)
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	for y := 0; s.Scan(); y++ {
		onLine(y, s.Text())
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

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

// Debugf prints only in sample mode with -debug set; real inputs are too
// noisy to trace.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods groups the D{day}p{part} methods of x by day, with parts
// sorted by name.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDay := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		name := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: want signature func() any", name)
		}
		d := Int(m[1])
		byDay[d] = append(byDay[d], partSolver{fn: fn, Part: m[2], Name: name})
	}
	days := make(map[int]day, len(byDay))
	for d, parts := range byDay {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
		days[d] = day{day: d, parts: parts}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

// modes returns which of sample/real runs the flags allow, sample first.
func modes() []bool {
	var out []bool
	if !flagSkipSample {
		out = append(out, true)
	}
	if !flagOnlySample {
		out = append(out, false)
	}
	return out
}

func runDay(slvr any, year int, d day, samples map[string]sample) {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	fmt.Println("Running day", d.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		for _, sm := range modes() {
			p.SampleMode = sm
			if !sm {
				// Fetch before starting the clock.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
				return
			}
			fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
		}
	}
}

// Run runs every day registered on slvr, or only the one selected with -day.
// src is the solver's own source, from which samples are extracted.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, d, samples)
		return
	}

	nums := maps.Keys(days)
	slices.Sort(nums)
	for _, n := range nums {
		runDay(slvr, year, days[n], samples)
		fmt.Println()
	}
}

var session = sync.OnceValue(func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}
