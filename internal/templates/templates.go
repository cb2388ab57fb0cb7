package templates

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Execute renders the named template with data into w.
func Execute(w io.Writer, name string, data any) error {
	content, err := Get(name)
	if err != nil {
		return err
	}
	t, err := template.New(name).Parse(content)
	if err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return t.Execute(w, data)
}
