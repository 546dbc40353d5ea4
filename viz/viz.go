// Package viz renders the interactive loss landscape visualization.
//
// This package wraps the internal viz implementation and provides a
// clean public API for serving and exporting the two-panel view: the
// selected sample's loss surface with the step arrow on the left, the
// mean surface with the trajectory so far on the right, both driven by
// a step slider.
//
// Components:
//   - Renderer: turns a dataset, landscape grid and trajectory into frames
//   - Server: serves the page and frame data over HTTP
//   - WriteHTML / WriteJSON: self-contained file export
//
// Example usage:
//
//	import "github.com/losslab-ml/losslab/viz"
//
//	r, err := viz.NewRenderer(data, grid, traj, meta)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Serve interactively
//	srv := viz.NewServer(r)
//	log.Fatal(srv.ListenAndServe(":8080"))
//
//	// Or export a standalone page
//	if err := viz.WriteHTML("losslab.html", r); err != nil {
//	    log.Fatal(err)
//	}
package viz

import (
	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/landscape"
	"github.com/losslab-ml/losslab/internal/trainer"
	"github.com/losslab-ml/losslab/internal/viz"
)

// Meta describes the experiment setup shown in the page header.
type Meta = viz.Meta

// Experiment is the static payload: axes, surfaces, path and metadata.
type Experiment = viz.Experiment

// Frame is the per-step payload for one slider position.
type Frame = viz.Frame

// Panel holds one rendered surface: heatmap image, contour polylines
// and the loss range backing the color scale.
type Panel = viz.Panel

// ContourLevel is one iso-loss level of a panel.
type ContourLevel = viz.ContourLevel

// SamplePoint is one (x, y) pair of the dataset as sent to the page.
type SamplePoint = viz.SamplePoint

// Renderer produces experiment and frame payloads from a finished run.
type Renderer = viz.Renderer

// NewRenderer validates the run artifacts and returns a renderer.
func NewRenderer(data *dataset.Dataset, grid *landscape.Grid, traj *trainer.Trajectory, meta Meta) (*Renderer, error) {
	return viz.NewRenderer(data, grid, traj, meta)
}

// Server serves the visualization page and its JSON API.
type Server = viz.Server

// NewServer wraps a renderer in an HTTP handler.
func NewServer(r *Renderer) *Server {
	return viz.NewServer(r)
}

// WriteHTML writes a self-contained page with every frame embedded.
func WriteHTML(path string, r *Renderer) error {
	return viz.WriteHTML(path, r)
}

// WriteJSON writes the experiment and all frames as indented JSON.
func WriteJSON(path string, r *Renderer) error {
	return viz.WriteJSON(path, r)
}
