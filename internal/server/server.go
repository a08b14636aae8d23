// Package server exposes section analysis over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/alexiusacademia/gosection/internal/config"
	"github.com/alexiusacademia/gosection/internal/report"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/alexiusacademia/gosection/internal/shape"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// maxBodyBytes limits the size of a section definition
const maxBodyBytes = 1 << 20

// Server is the HTTP front end for section analysis.
type Server struct {
	cfg    config.Config
	router *mux.Router
}

// New creates a server and registers its routes.
func New(cfg config.Config) *Server {
	s := &Server{cfg: cfg, router: mux.NewRouter()}

	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(logRequests)
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/shapes", s.handleShapes).Methods("GET")
	api.HandleFunc("/section/properties", s.handleProperties).Methods("POST")
	api.HandleFunc("/section/report/{format}", s.handleReport).Methods("POST")

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("gosection server starting on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received, closing active connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%s)", r.RemoteAddr, r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleShapes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, section.Catalog)
}

func (s *Server) handleProperties(w http.ResponseWriter, r *http.Request) {
	result, ok := s.analyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]
	if format != "pdf" && format != "xlsx" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown report format %q: use pdf or xlsx", format))
		return
	}

	result, ok := s.analyze(w, r)
	if !ok {
		return
	}

	rep := report.New(result, s.cfg.Precision)
	var buf bytes.Buffer
	var err error
	var contentType string
	switch format {
	case "pdf":
		contentType = "application/pdf"
		err = report.WritePDF(&buf, rep)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = report.WriteWorkbook(&buf, rep)
	}
	if err != nil {
		log.Printf("report generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=section.%s", format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("writing %s report: %v", format, err)
	}
}

// analyze decodes the section in the request body and analyzes it. On
// failure the error response has already been written.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (*section.AnalysisResult, bool) {
	var sec section.Section
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&sec); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return nil, false
	}
	if sec.Unit == "" {
		sec.Unit = s.cfg.Unit
	}

	result, err := sec.Analyze()
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return nil, false
	}
	return result, true
}

func isInputError(err error) bool {
	var ve *section.ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, shape.ErrInvalidGeometry) ||
		errors.Is(err, shape.ErrDegenerateComposite) ||
		errors.Is(err, section.ErrNonFiniteResult)
}

// writeJSON encodes v before writing the header so an encoding failure
// still reaches the client as a 500
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
		buf.Reset()
		status = http.StatusInternalServerError
		fmt.Fprintln(&buf, `{"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
