package aoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"regexp"
	"strings"
)

// sample is the expected answer and input a solver documents above its
// method:
//
//	/*
//	want=1651
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	...
//	*/
//
// A part that omits the input reuses the previous part's.
type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples returns the samples of src keyed by the name of the function
// they document.
func extractSamples(src []byte) map[string]sample {
	f, err := parser.ParseFile(token.NewFileSet(), "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
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
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples
}
