package main

const tupleTemplate = `{{define "tuple"}}// Code generated by gentuple; DO NOT EDIT.

package {{.Package}}
{{range .Arities}}{{$n := .N}}{{$a := join "A%[1]d" $n ", "}}
// T{{$n}} is a record of {{.Words}}.
type T{{$n}}[{{$a}} any] struct {
{{- range .Idx}}
	V{{.}} A{{.}}
{{- end}}
}

// Of{{$n}} returns a T{{$n}} holding the given values.
func Of{{$n}}[{{$a}} any]({{join "v%[1]d A%[1]d" $n ", "}}) T{{$n}}[{{$a}}] {
	return T{{$n}}[{{$a}}]{ {{- join "V%[1]d: v%[1]d" $n ", " -}} }
}

// Arity returns {{$n}}.
func (T{{$n}}[{{$a}}]) Arity() int { return {{$n}} }

// Fields{{$n}} returns a record of pointers to the fields of t.
func Fields{{$n}}[{{$a}} any](t *T{{$n}}[{{$a}}]) T{{$n}}[{{join "*A%[1]d" $n ", "}}] {
	return T{{$n}}[{{join "*A%[1]d" $n ", "}}]{ {{- join "V%[1]d: &t.V%[1]d" $n ", " -}} }
}

// ForEach{{$n}} calls fi with field i of t, in field order.
func ForEach{{$n}}[{{$a}} any](t T{{$n}}[{{$a}}], {{join "f%[1]d func(A%[1]d)" $n ", "}}) {
{{- range .Idx}}
	f{{.}}(t.V{{.}})
{{- end}}
}

// All{{$n}} reports whether pi holds for field i of t for every i.
// Predicates run in field order; after the first false result the
// remaining predicates are not called.
func All{{$n}}[{{$a}} any](t T{{$n}}[{{$a}}], {{join "p%[1]d func(A%[1]d) bool" $n ", "}}) bool {
	return {{join "p%[1]d(t.V%[1]d)" $n " && "}}
}

// Map{{$n}} returns the record whose field i is fi(t.Vi). The functions
// run in field order.
func Map{{$n}}[{{$a}}, {{join "R%[1]d" $n ", "}} any](t T{{$n}}[{{$a}}], {{join "f%[1]d func(A%[1]d) R%[1]d" $n ", "}}) T{{$n}}[{{join "R%[1]d" $n ", "}}] {
	return T{{$n}}[{{join "R%[1]d" $n ", "}}]{ {{- join "V%[1]d: f%[1]d(t.V%[1]d)" $n ", " -}} }
}

// Zip{{$n}} pairs the fields of a and b position by position.
func Zip{{$n}}[{{$a}}, {{join "B%[1]d" $n ", "}} any](a T{{$n}}[{{$a}}], b T{{$n}}[{{join "B%[1]d" $n ", "}}]) T{{$n}}[{{join "Pair[A%[1]d, B%[1]d]" $n ", "}}] {
	return T{{$n}}[{{join "Pair[A%[1]d, B%[1]d]" $n ", "}}]{
{{- range .Idx}}
		V{{.}}: Pair[A{{.}}, B{{.}}]{First: a.V{{.}}, Second: b.V{{.}}},
{{- end}}
	}
}
{{end}}{{end}}`
