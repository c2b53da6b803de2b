package emit

import "text/template"

var shapeTemplate = template.Must(template.New("shape").Parse(`
func init() {
	{{.Runtime}}.Register[{{.Name}}]({{printf "%q" .Repr}}{{range .Variants}},
		{{$.Runtime}}.V({{printf "%q" .Name}}, {{.Name}}){{end}}{{if .Variants}},
	{{end}})
}
`))

var conversionsTemplate = template.Must(template.New("conversions").Parse(`
// {{.Name}}FromRepr converts a raw {{.Repr}} to {{.Name}}. It returns
// {{.Runtime}}.UnknownValueError[{{.Repr}}] when {{.Local.Value}} matches no {{.Name}} constant.
func {{.Name}}FromRepr({{.Local.Value}} {{.Repr}}) ({{.Name}}, error) {
	{{.Local.Shape}} := {{.Runtime}}.ShapeOf[{{.Name}}]()
	for _, {{.Local.Variant}} := range {{.Runtime}}.PeekEnum({{.Local.Shape}}).Variants {
		if {{.Runtime}}.Reinterpret[{{.Repr}}]({{.Local.Variant}}) == {{.Local.Value}} {
			return {{.Name}}({{.Local.Value}}), nil
		}
	}

	return 0, {{.Runtime}}.UnknownValueError[{{.Repr}}]{Value: {{.Local.Value}}}
}

// Repr returns the {{.Repr}} representation of {{.Local.Recv}}.
func ({{.Local.Recv}} {{.Name}}) Repr() {{.Repr}} {
	return {{.Repr}}({{.Local.Recv}})
}
`))

var panicIntoTemplate = template.Must(template.New("panic_into").Parse(`
// {{.Method}} converts {{.Local.Recv}} to {{.Type}}. It panics if {{.Local.Recv}} does not fit.
func ({{.Local.Recv}} {{.Name}}) {{.Method}}() {{.Type}} {
	return {{.Runtime}}.PanicInto[{{.Type}}]({{.Local.Recv}}.Repr(), "All {{.Name}} values fit into a {{.Type}}.")
}
`))
