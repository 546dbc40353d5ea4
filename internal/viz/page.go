package viz

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageData feeds the page template. Boot is empty when the page is
// served live (the script fetches payloads from the API) and holds the
// full experiment JSON when exporting a standalone file.
type pageData struct {
	Boot template.JS
}

func renderPage(boot template.JS) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Boot: boot}); err != nil {
		return nil, fmt.Errorf("viz: render page: %w", err)
	}
	return buf.Bytes(), nil
}
