package std

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/mrya-lang/mrya/values"
)

// placeholderPattern rewrites Mrya's `[$ expr $]` template-hole syntax
// (recovered from original_source's templating module) into Go's `{{expr}}`
// syntax before handing the template to html/template, so rendering gets
// the standard library's contextual auto-escaping for free rather than a
// hand-rolled substitution pass — a stdlib-only module is appropriate here
// since no HTML templating library appears anywhere in the example pack.
var placeholderPattern = regexp.MustCompile(`\[\$(.*?)\$\]`)

// NewHTMLModule builds the `html` native module (spec §7 Domain stack).
func NewHTMLModule() *values.Module {
	b := NewModule("html")
	b.Func("render", 2, htmlRender)
	b.Func("escape", 1, htmlEscape)
	return b.Build()
}

// Syntax: render(template_string, data_map)
func htmlRender(args []values.Value) (values.Value, error) {
	src, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("render", 0, "string", args[0])
	}
	translated := placeholderPattern.ReplaceAllString(src, "{{$1}}")
	t, err := template.New("mrya").Parse(translated)
	if err != nil {
		return nil, ArgError("render", "invalid template: %v", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, toGo(args[1])); err != nil {
		return nil, ArgError("render", "template execution failed: %v", err)
	}
	return Str(buf.String()), nil
}

// Syntax: escape(s)
func htmlEscape(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("escape", 0, "string", args[0])
	}
	return Str(template.HTMLEscapeString(s)), nil
}
