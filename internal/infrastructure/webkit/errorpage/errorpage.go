// Package errorpage renders the pages shown in place of a failed load.
package errorpage

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var _ port.ErrorPageRenderer = (*Renderer)(nil)

// Renderer renders the network-down and unavailable pages.
type Renderer struct {
	networkDown    *template.Template
	unavailable    *template.Template
	supportContact string
}

type pageData struct {
	StartURL       any
	SupportContact string
}

// New parses the embedded templates. supportContact is optional text
// appended to the network-down page.
func New(supportContact string) (*Renderer, error) {
	networkDown, err := template.ParseFS(templateFS, "templates/network_down.html", "templates/style.html")
	if err != nil {
		return nil, fmt.Errorf("parse network down page: %w", err)
	}
	unavailable, err := template.ParseFS(templateFS, "templates/unavailable.html", "templates/style.html")
	if err != nil {
		return nil, fmt.Errorf("parse unavailable page: %w", err)
	}
	return &Renderer{
		networkDown:    networkDown,
		unavailable:    unavailable,
		supportContact: supportContact,
	}, nil
}

// Render returns the page for outcome. A successful load has no page.
func (r *Renderer) Render(outcome entity.LoadOutcome, startURL string) (string, error) {
	var tmpl *template.Template
	switch outcome {
	case entity.LoadStartPageUnreachable:
		tmpl = r.networkDown
	case entity.LoadOtherPageUnreachable:
		tmpl = r.unavailable
	default:
		return "", fmt.Errorf("no page for outcome %s", outcome)
	}

	data := pageData{StartURL: startURL, SupportContact: r.supportContact}
	// The start URL comes from the operator's config. Non-http schemes such
	// as about: would otherwise be rewritten by the template sanitizer.
	if entity.IsNavigableURL(startURL) {
		data.StartURL = template.URL(startURL) //nolint:gosec // operator-controlled value
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s page: %w", outcome, err)
	}
	return buf.String(), nil
}
