// Package ui serves the web playground: an editor page plus a small JSON API
// for translating, running and checking snippets.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"net/http"
	"os"
	"slices"

	"github.com/javaplay/javaplay/playground"
	"github.com/tliron/commonlog"
)

//go:embed static templates examples
var embeddedFS embed.FS

var log = commonlog.GetLogger("javaplay.ui")

const maxBodySize = 1 << 20

type Server struct {
	service    *playground.Service
	examples   []Example
	staticFS   fs.FS
	templateFS fs.FS
	funcMap    template.FuncMap
	mux        *http.ServeMux
}

func NewServer(service *playground.Service) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	examples, err := loadExamples(mustSub(embeddedFS, "examples"))
	if err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}

	funcMap := template.FuncMap{
		"first": func(examples []Example) string {
			if len(examples) == 0 {
				return ""
			}
			return examples[0].Source
		},
	}

	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		service:    service,
		examples:   examples,
		staticFS:   staticFS,
		templateFS: templateFS,
		funcMap:    funcMap,
		mux:        http.NewServeMux(),
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /examples/{name}", s.handleExample)
	s.mux.HandleFunc("POST /api/translate", s.handleTranslate)
	s.mux.HandleFunc("POST /api/run", s.handleRun)
	s.mux.HandleFunc("POST /api/check", s.handleCheck)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// render parses the templates on every call so that edits under ui/templates
// show up without a restart.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %v", name, err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Examples []Example
	}{
		Examples: s.examples,
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	for _, ex := range s.examples {
		if ex.Name == name {
			w.Header().Set("Content-Type", "text/x-java; charset=utf-8")
			fmt.Fprint(w, ex.Source)
			return
		}
	}
	http.Error(w, "example not found", http.StatusNotFound)
}

type snippetRequest struct {
	Source   string `json:"source"`
	Expected string `json:"expected,omitempty"`
}

type translateResponse struct {
	OK    bool   `json:"ok"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSnippet(w, r)
	if !ok {
		return
	}
	res := s.service.Translate(req.Source)
	resp := translateResponse{OK: res.OK(), Code: res.Code}
	if res.Err != nil {
		resp.Error = "Error: " + res.Err.Error()
	}
	writeJSON(w, resp)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSnippet(w, r)
	if !ok {
		return
	}
	out := s.service.Execute(r.Context(), req.Source)
	log.Debugf("run: %d bytes of output, failed=%t", len(out.Output), out.Failed())
	writeJSON(w, out)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSnippet(w, r)
	if !ok {
		return
	}
	writeJSON(w, s.service.Check(r.Context(), req.Source, req.Expected))
}

func decodeSnippet(w http.ResponseWriter, r *http.Request) (snippetRequest, bool) {
	var req snippetRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %v", err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// overlay serves files from a directory on disk when present and falls back
// to the embedded copy. Directory listings merge both, sorted by name as
// fs.ReadDirFS requires.
type overlay struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlay{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlay) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlay) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if list, err := fs.ReadDir(o.secondary, name); err == nil {
		for _, e := range list {
			entries[e.Name()] = e
		}
	}
	if list, err := fs.ReadDir(o.primary, name); err == nil {
		for _, e := range list {
			entries[e.Name()] = e
		}
	}

	names := slices.Sorted(maps.Keys(entries))
	result := make([]fs.DirEntry, len(names))
	for i, name := range names {
		result[i] = entries[name]
	}
	return result, nil
}
