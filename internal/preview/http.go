package preview

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/version"
	"github.com/muurk/flochat/internal/widget"
	"go.uber.org/zap"
)

//go:embed templates/page.html.tmpl
var pageTemplate string

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageData is the template context for the preview page
type pageData struct {
	Config  widget.Config
	Presets []widget.ColorPreset
	Version string
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", logRequests(http.HandlerFunc(s.handlePage)))
	mux.Handle("GET /api/config", logRequests(http.HandlerFunc(s.handleConfig)))
	mux.Handle("GET /api/code", logRequests(http.HandlerFunc(s.handleCode)))
	// Not wrapped: the upgrade needs the original ResponseWriter's Hijacker.
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	data := pageData{
		Config:  s.source.Config(),
		Presets: widget.ColorPresets,
		Version: version.Version,
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		logging.Error("Failed to render preview page", zap.Error(err))
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.source.Config()); err != nil {
		logging.Error("Failed to encode config", zap.Error(err))
	}
}

// handleCode returns the generated snippet. ?type=component|page overrides
// the configured copy type.
func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	cfg := s.source.Config()
	mode := cfg.CopyType
	if t := r.URL.Query().Get("type"); t != "" {
		mode = widget.CopyType(t)
		if !mode.Valid() {
			http.Error(w, `invalid type "`+t+`": must be one of component, page`, http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(codegen.GenerateAs(cfg, mode)))
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status)
	})
}
