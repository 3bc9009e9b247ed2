// Package render formats filters and command results for the terminal.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/gnolang/combfilter/filter"
)

const indentWidth = 2

var (
	errorStyle  = color.New(color.FgRed, color.Bold)
	nameStyle   = color.New(color.FgYellow, color.Bold)
	fileStyle   = color.New(color.FgCyan, color.Bold)
	labelStyle  = color.New(color.FgHiBlue, color.Bold)
	opStyle     = color.New(color.FgYellow, color.Bold)
	notStyle    = color.New(color.FgMagenta, color.Bold)
	constStyle  = color.New(color.FgGreen, color.Bold)
	matchStyle  = color.New(color.FgGreen, color.Bold)
	rejectStyle = color.New(color.FgRed)
)

// SetColor turns colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Section is a labelled block of a report.
type Section struct {
	Label string
	Body  string
}

// Report is the output of a command for one document.
type Report struct {
	Name     string
	Path     string
	Sections []Section
}

const reportTemplate = `{{header .Name .Path}}
{{- range .Sections}}
{{label .Label}}
{{indent .Body}}
{{- end}}
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"header": header,
	"label":  label,
	"indent": indent,
}).Parse(reportTemplate))

// Format renders r as a block of text ending with a newline.
func Format(r Report) string {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, r); err != nil {
		return fmt.Sprintf("Error formatting report: %v\n", err)
	}
	return buf.String()
}

func header(name, path string) string {
	if name == "" {
		return fileStyle.Sprint(path)
	}
	return nameStyle.Sprint(name) + " " + labelStyle.Sprint("--> ") + fileStyle.Sprint(path)
}

func label(s string) string {
	return labelStyle.Sprintf("%s:", s)
}

func indent(s string) string {
	pad := strings.Repeat(" ", indentWidth)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// Error renders a failure for path.
func Error(path string, err error) string {
	return errorStyle.Sprint("error: ") + fileStyle.Sprint(path) + ": " + err.Error() + "\n"
}

// Verdict renders whether value was accepted.
func Verdict(value string, ok bool) string {
	if ok {
		return matchStyle.Sprint("match ") + value
	}
	return rejectStyle.Sprint("reject") + " " + value
}

// Tree renders n with one node per line, children indented below their
// parent.
func Tree[F filter.Filter](n filter.Node[F]) string {
	var b strings.Builder
	writeTree(&b, n, 0)
	return b.String()
}

func writeTree[F filter.Filter](b *strings.Builder, n filter.Node[F], depth int) {
	b.WriteString(strings.Repeat(" ", depth*indentWidth))
	filter.Match(n,
		func(c *filter.Combination[F]) struct{} {
			if c.Len() == 0 {
				b.WriteString(constStyle.Sprint(c.String()) + "\n")
				return struct{}{}
			}
			b.WriteString(opStyle.Sprint(strings.ToUpper(c.Operator().String())) + "\n")
			for _, child := range c.Nodes() {
				writeTree(b, child, depth+1)
			}
			return struct{}{}
		},
		func(i *filter.Inverted[F]) struct{} {
			b.WriteString(notStyle.Sprint("NOT") + "\n")
			writeTree(b, i.Operand(), depth+1)
			return struct{}{}
		},
		func(l *filter.Leaf[F]) struct{} {
			b.WriteString(l.String() + "\n")
			return struct{}{}
		},
	)
}
