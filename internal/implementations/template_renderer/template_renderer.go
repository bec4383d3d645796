package templaterenderer

import (
	"bytes"
	"embed"
	"io/fs"
	"text/template"
	"time"

	"github.com/golang-module/carbon/v2"
)

//go:embed templates/*.txt
var embedded embed.FS

const pattern = "*.txt"

type TextRenderer struct {
	templates *template.Template
}

// New loads the templates bundled with the binary.
func New() (*TextRenderer, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return NewFromFS(sub)
}

// NewFromFS loads every *.txt file of fsys, the file name is the template name.
func NewFromFS(fsys fs.FS) (*TextRenderer, error) {
	templates, err := template.New("").
		Option("missingkey=error").
		Funcs(template.FuncMap{"datetime": formatDateTime}).
		ParseFS(fsys, pattern)
	if err != nil {
		return nil, err
	}
	return &TextRenderer{templates: templates}, nil
}

func (r *TextRenderer) Render(name string, data map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatDateTime(t time.Time) string {
	return carbon.Time2Carbon(t).SetTimezone(carbon.UTC).ToDateTimeString()
}
