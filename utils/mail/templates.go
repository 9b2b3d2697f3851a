package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"sync"
)

// Row is one label/value line in an email table. Absent optional fields are
// filled with a placeholder before they reach a template, never dropped.
type Row struct {
	Label string
	Value string
}

var (
	templatesMu sync.RWMutex
	templates   *template.Template
)

// InitTemplates parses the email templates from the given filesystem,
// normally the embedded templates/email directory. Must be called before the
// first send.
func InitTemplates(fsys fs.FS) error {
	t, err := template.ParseFS(fsys, "templates/email/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	templatesMu.Lock()
	templates = t
	templatesMu.Unlock()
	return nil
}

func render(name string, data interface{}) (string, error) {
	templatesMu.RLock()
	t := templates
	templatesMu.RUnlock()

	if t == nil {
		return "", fmt.Errorf("email templates not initialized")
	}

	var body bytes.Buffer
	if err := t.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", name, err)
	}
	return body.String(), nil
}

func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
