// Code generator for the fixed-arity tuple and map types.
// Go has no variadic type parameters, so every arity is spelled out.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

var (
	kind     = flag.String("kind", "", "what to generate (tuple, map)")
	output   = flag.String("o", "", "output file")
	pkg      = flag.String("pkg", "", "package name (default: tuple or tuplemap)")
	maxArity = flag.Int("max", 4, "largest arity to generate")
)

func main() {
	flag.Parse()

	if *output == "" {
		fmt.Fprintln(os.Stderr, "must specify -o")
		os.Exit(1)
	}

	gen := &Generator{
		Kind:     *kind,
		Package:  *pkg,
		MaxArity: *maxArity,
	}

	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Generator renders one of the templates for arities 1..MaxArity.
type Generator struct {
	Kind     string
	Package  string
	MaxArity int
}

// Arity is the template data for one record size.
type Arity struct {
	N     int
	Idx   []int
	Words string
}

type templateData struct {
	Package string
	Arities []Arity
}

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight"}

func (g *Generator) Generate() ([]byte, error) {
	if g.MaxArity < 1 || g.MaxArity >= len(numberWords) {
		return nil, fmt.Errorf("arity must be in [1, %d], got %d", len(numberWords)-1, g.MaxArity)
	}

	var name string
	switch g.Kind {
	case "tuple":
		name = "tuple"
		if g.Package == "" {
			g.Package = "tuple"
		}
	case "map":
		name = "map"
		if g.Package == "" {
			g.Package = "tuplemap"
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", g.Kind)
	}

	data := templateData{Package: g.Package}
	for n := 1; n <= g.MaxArity; n++ {
		a := Arity{N: n, Words: numberWords[n] + " fields"}
		if n == 1 {
			a.Words = "one field"
		}
		for i := 0; i < n; i++ {
			a.Idx = append(a.Idx, i)
		}
		data.Arities = append(data.Arities, a)
	}

	tmpl, err := template.New("gentuple").Funcs(template.FuncMap{
		"join": join,
	}).Parse(tupleTemplate + mapTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w\n%s", err, buf.String())
	}
	return src, nil
}

// join formats format once per index in [0, n) and joins the results.
// The format refers to the index as %[1]d.
func join(format string, n int, sep string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, sep)
}
