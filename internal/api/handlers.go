package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/buildinfo"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// GraphRequest is the body of POST /v1/graph.
type GraphRequest struct {
	Tasks  []task.Task    `json:"tasks"`
	Focus  string         `json:"focus,omitempty"`
	Layout *layout.Config `json:"layout,omitempty"`
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code      errors.Code `json:"code"`
		Message   string      `json:"message"`
		RequestID string      `json:"request_id,omitempty"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleComputeGraph(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	for i, t := range req.Tasks {
		if err := errors.ValidateTaskID(t.ID); err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidTask, err, "task %d", i))
			return
		}
	}

	opts := pipeline.Options{Focus: req.Focus, Layout: s.opts.Layout}
	if req.Layout != nil {
		opts.Layout = *req.Layout
	}
	l, err := s.runner.Compute(r.Context(), req.Tasks, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleProjectGraph(w http.ResponseWriter, r *http.Request) {
	opts := s.projectOptions(r)
	tasks, err := s.runner.Load(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.runner.Compute(r.Context(), tasks, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleProjectSVG(w http.ResponseWriter, r *http.Request) {
	opts := s.projectOptions(r)
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Interactive = queryBool(r, "interactive", true)
	opts.Legend = queryBool(r, "legend", false)

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleProjectDiagnostics(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.runner.Load(r.Context(), s.projectOptions(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pipeline.Diagnose(tasks))
}

func (s *Server) projectOptions(r *http.Request) pipeline.Options {
	return pipeline.Options{
		Project: chi.URLParam(r, "project"),
		Focus:   r.URL.Query().Get("focus"),
		Refresh: queryBool(r, "refresh", false),
		Layout:  s.opts.Layout,
	}
}

func queryBool(r *http.Request, key string, def bool) bool {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	var body errorBody
	body.Error.Code = errors.GetCode(err)
	if body.Error.Code == "" {
		body.Error.Code = errors.ErrCodeInternal
	}
	body.Error.Message = errors.UserMessage(err)
	body.Error.RequestID = RequestID(r.Context())

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", body.Error.RequestID)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
