package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Renderer renders named email bodies inside the base layout.
type Renderer struct {
	base      *template.Template
	templates map[string]*template.Template
}

// NewRenderer parses the base layout and all body templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Parse(BaseTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}

	r := &Renderer{
		base:      base,
		templates: make(map[string]*template.Template),
	}

	bodies := map[string]string{
		"contact_submission": ContactSubmissionTemplate,
		"booking_request":    BookingRequestTemplate,
	}

	for name, content := range bodies {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render renders a body template with data and wraps it in the base layout.
func (r *Renderer) Render(name string, data interface{}) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, data); err != nil {
		return "", err
	}

	var htmlBuf bytes.Buffer
	if err := r.base.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return "", err
	}

	return htmlBuf.String(), nil
}
