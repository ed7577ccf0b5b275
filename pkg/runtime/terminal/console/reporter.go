package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/report-forge/pkg/services/preview"
)

type TableConfig struct {
	TypeWidth    int
	TitleWidth   int
	DetailsWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		TypeWidth:    10,
		TitleWidth:   32,
		DetailsWidth: 48,
	}
}

// Reporter prints a rendered document preview to the console in a
// formatted text form.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(view preview.DocumentView) error {
	funcMap := template.FuncMap{
		"formatRow": func(kind, title, details string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				c.config.TypeWidth, kind,
				c.config.TitleWidth, title,
				c.config.DetailsWidth, details)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.TypeWidth+2),
				strings.Repeat("-", c.config.TitleWidth+2),
				strings.Repeat("-", c.config.DetailsWidth+2))
		},
		"joinLines": func(lines []string) string {
			return strings.Join(lines, "; ")
		},
	}

	tmpl := `
{{if .Empty}}{{.Name}} (empty document, no sections)
{{else}}{{.Name}}
{{range .Sections}}
=== {{.Title}} ({{.Layout}}) ===
{{if .Empty}}(empty section, no widgets)
{{else}}{{separator}}
{{formatRow "Type" "Title" "Details"}}
{{separator}}
{{range .Widgets}}{{formatRow .Placeholder.Kind .Placeholder.Title (joinLines .Placeholder.Lines)}}
{{end}}{{separator}}
{{end}}{{end}}{{end}}
`

	t, err := template.New("preview").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
