package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/fontlink/pkg/buildinfo"
	ferrors "github.com/matzehuels/fontlink/pkg/errors"
	"github.com/matzehuels/fontlink/pkg/fonts"
	"github.com/matzehuels/fontlink/pkg/manifest"
	"github.com/matzehuels/fontlink/pkg/observability"
)

const hookSource = "http"

type compileResponse struct {
	URL      string `json:"url"`
	Link     string `json:"link"`
	Families int    `json:"families"`
}

type errorResponse struct {
	Code      ferrors.Code `json:"code"`
	Error     string       `json:"error"`
	Attribute string       `json:"attribute,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleURL(w http.ResponseWriter, r *http.Request) {
	url, n, err := s.compileQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compileResponse{URL: url, Link: fonts.LinkTag(url), Families: n})
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	url, _, err := s.compileQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body := fonts.LinkTag(url)
	if r.URL.Query().Get("preconnect") == "true" {
		body = fonts.PreconnectTags() + "\n" + body
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body + "\n"))
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "request body exceeds %d bytes", maxBodyBytes))
			return
		}
		s.writeError(w, r, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	res, err := manifest.Parse(manifest.JSON{}, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	url, err := s.compile(r, res.Families)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compileResponse{URL: url, Link: fonts.LinkTag(url), Families: len(res.Families)})
}

func (s *Server) compileQuery(r *http.Request) (string, int, error) {
	families, err := fonts.ParseFamilies(r.URL.Query()["family"])
	if err != nil {
		return "", 0, err
	}
	url, err := s.compile(r, families)
	return url, len(families), err
}

func (s *Server) compile(r *http.Request, families []fonts.Family) (string, error) {
	start := time.Now()
	url, err := fonts.Compile(families)
	if err == nil {
		err = ferrors.ValidateURL(url)
	}
	observability.Compile().OnCompile(r.Context(), hookSource, len(families), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{
		Code:      ferrors.GetCode(err),
		Error:     ferrors.UserMessage(err),
		Attribute: ferrors.GetAttribute(err),
		RequestID: RequestIDFromContext(r.Context()),
	}
	status := http.StatusBadRequest
	if resp.Code == "" || resp.Code == ferrors.ErrCodeInternal {
		status = http.StatusInternalServerError
		resp.Code = ferrors.ErrCodeInternal
		resp.Error = http.StatusText(status)
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", resp.RequestID)
	} else {
		s.logger.Debug("rejected request", "path", r.URL.Path, "code", resp.Code, "err", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}
