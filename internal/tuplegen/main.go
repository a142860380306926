// Command tuplegen writes the fixed-arity tuple types of pkg/tuple.
//
// Each arity N gets a struct OfN with fields V0..V(N-1), a constructor
// NewN, and one accessor per field returning a Cell, so that selecting
// a field beyond the arity is a compile error.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

var fileTemplate = template.Must(template.New("tuple").Parse(`// Code generated by tuplegen. DO NOT EDIT.

package tuple
{{range .}}
// Of{{.N}} is a tuple of {{.N}} field{{if gt .N 1}}s{{end}}.
type Of{{.N}}[{{.Params}} any] struct {
{{- range .Fields}}
	V{{.}} T{{.}}
{{- end}}
}

// New{{.N}} returns a tuple of {{.N}} field{{if gt .N 1}}s{{end}}.
func New{{.N}}[{{.Params}} any]({{.Args}}) {{.Type}} {
	return {{.Type}}{ {{- .Inits -}} }
}

// Len returns {{.N}}.
func (t {{.Type}}) Len() int { return {{.N}} }

// Values returns the fields in order.
func (t {{.Type}}) Values() []any { return []any{ {{- .Selectors -}} } }

// String renders the tuple as (v0, v1, ...).
func (t {{.Type}}) String() string { return render(t.Values()) }
{{$t := .Type}}{{range .Fields}}
// F{{.}} returns field {{.}}.
func (t {{$t}}) F{{.}}() Cell[T{{.}}] { return Cell[T{{.}}]{Index: {{.}}, Value: t.V{{.}}} }
{{end}}{{end}}`))

type arity struct {
	N         int
	Fields    []int
	Params    string
	Args      string
	Type      string
	Inits     string
	Selectors string
}

func newArity(n int) arity {
	a := arity{N: n}
	params := make([]string, n)
	args := make([]string, n)
	inits := make([]string, n)
	selectors := make([]string, n)
	for i := 0; i < n; i++ {
		a.Fields = append(a.Fields, i)
		params[i] = fmt.Sprintf("T%d", i)
		args[i] = fmt.Sprintf("v%d T%d", i, i)
		inits[i] = fmt.Sprintf("V%d: v%d", i, i)
		selectors[i] = fmt.Sprintf("t.V%d", i)
	}
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	a.Type = fmt.Sprintf("Of%d[%s]", n, a.Params)
	a.Inits = strings.Join(inits, ", ")
	a.Selectors = strings.Join(selectors, ", ")
	return a
}

// generate renders and formats the tuple types for arities 1 through
// maxArity.
func generate(maxArity int) ([]byte, error) {
	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, arities); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func main() {
	out := flag.String("o", "tuple_gen.go", "output file")
	maxArity := flag.Int("max", 17, "largest arity to generate")
	flag.Parse()

	src, err := generate(*maxArity)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
