package viz

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
)

// bootPayload is the embedded-data shape the page script consumes when
// the file is opened without a server.
type bootPayload struct {
	Experiment *Experiment `json:"experiment"`
	Frames     []Frame     `json:"frames"`
}

// WriteHTML exports the experiment as a standalone HTML file with
// every frame embedded. The file needs no server and no network.
func WriteHTML(path string, r *Renderer) error {
	exp, err := r.Experiment()
	if err != nil {
		return err
	}
	frames, err := r.Frames()
	if err != nil {
		return err
	}

	data, err := json.Marshal(bootPayload{Experiment: exp, Frames: frames})
	if err != nil {
		return fmt.Errorf("viz: marshal payload: %w", err)
	}

	page, err := renderPage(template.JS(data))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return fmt.Errorf("viz: write %s: %w", path, err)
	}
	return nil
}

// WriteJSON exports the raw experiment and frame payloads for use
// outside the page, such as replotting in a notebook.
func WriteJSON(path string, r *Renderer) error {
	exp, err := r.Experiment()
	if err != nil {
		return err
	}
	frames, err := r.Frames()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(bootPayload{Experiment: exp, Frames: frames}, "", "  ")
	if err != nil {
		return fmt.Errorf("viz: marshal payload: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("viz: write %s: %w", path, err)
	}
	return nil
}
