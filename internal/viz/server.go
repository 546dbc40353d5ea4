package viz

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// Server serves the interactive page and the JSON API behind it.
//
// Routes:
//
//	GET /                 the page
//	GET /api/experiment   frame-independent payload
//	GET /api/frame?index=k  payload for slider position k
type Server struct {
	renderer *Renderer
	mux      *http.ServeMux
}

// NewServer builds a server around a renderer.
func NewServer(r *Renderer) *Server {
	s := &Server{renderer: r, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handlePage)
	s.mux.HandleFunc("/api/experiment", s.handleExperiment)
	s.mux.HandleFunc("/api/frame", s.handleFrame)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.mux.ServeHTTP(w, req)
}

// ListenAndServe blocks serving the visualization on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("serving visualization on %s", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handlePage(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	page, err := renderPage("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleExperiment(w http.ResponseWriter, req *http.Request) {
	exp, err := s.renderer.Experiment()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, exp)
}

func (s *Server) handleFrame(w http.ResponseWriter, req *http.Request) {
	k, err := strconv.Atoi(req.URL.Query().Get("index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}
	frame, err := s.renderer.Frame(k)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, frame)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
