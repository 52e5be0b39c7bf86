package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/promptloom/promptloom/internal/core/assemble"
	"github.com/promptloom/promptloom/internal/core/nodes"
	"github.com/promptloom/promptloom/internal/core/promptfile"
	apperrors "github.com/promptloom/promptloom/internal/errors"
	"github.com/promptloom/promptloom/internal/observability"
)

// API serves the prompt assembly endpoints over one prompt library.
type API struct {
	promptDir string
}

// NewAPI returns an API rooted at the given prompt directory.
func NewAPI(promptDir string) *API {
	return &API{promptDir: promptDir}
}

// decodeBody unmarshals a JSON request body, rejecting malformed payloads
// with INVALID_INPUT.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, r, apperrors.NewInvalidInputError("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// logAssemblyFailure records placeholder failures. The HTTP response is
// still 200: hosts consume the placeholder prompt, not the envelope.
func logAssemblyFailure(r *http.Request, result *assemble.Result) {
	if !result.Failed() || observability.ServerLogger == nil {
		return
	}
	observability.ServerLogger.Warn("assembly returned placeholder",
		zap.String("path", r.URL.Path),
		zap.String("code", apperrors.CodeOf(result.Err)),
		zap.Error(result.Err))
}

// GenerateHandler serves POST /v1/generate.
func (a *API) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req assemble.SingleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.PromptDir = a.promptDir

	result := assemble.Single(req)
	logAssemblyFailure(r, &result)
	writeJSON(w, result)
}

// BatchHandler serves POST /v1/batch.
func (a *API) BatchHandler(w http.ResponseWriter, r *http.Request) {
	var req assemble.BatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.PromptDir = a.promptDir

	result := assemble.Batch(req)
	logAssemblyFailure(r, &result)
	writeJSON(w, result)
}

// CombineHandler serves POST /v1/combine.
func (a *API) CombineHandler(w http.ResponseWriter, r *http.Request) {
	var req assemble.CombineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.PromptDir = a.promptDir

	result := assemble.Combine(req)
	logAssemblyFailure(r, &result)
	writeJSON(w, result)
}

// RedNoteHandler serves POST /v1/rednote.
func (a *API) RedNoteHandler(w http.ResponseWriter, r *http.Request) {
	var req assemble.RedNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.PromptDir = a.promptDir

	result := assemble.RedNote(req)
	logAssemblyFailure(r, &result)
	writeJSON(w, result)
}

// SuffixResponse is the POST /v1/suffix payload.
type SuffixResponse struct {
	Suffix   string `json:"suffix"`
	Negative string `json:"negative"`
}

// SuffixHandler serves POST /v1/suffix.
func (a *API) SuffixHandler(w http.ResponseWriter, r *http.Request) {
	var req assemble.SuffixRequest
	if !decodeBody(w, r, &req) {
		return
	}

	suffix, negative := assemble.Suffix(req)
	writeJSON(w, SuffixResponse{Suffix: suffix, Negative: negative})
}

// NodesResponse is the GET /v1/nodes payload.
type NodesResponse struct {
	Nodes []nodes.Node `json:"nodes"`
}

// NodesHandler serves GET /v1/nodes: the registration contract built
// against the live prompt library.
func (a *API) NodesHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, NodesResponse{Nodes: nodes.Registry(promptfile.List(a.promptDir))})
}

// FilesResponse is the GET /v1/files payload.
type FilesResponse struct {
	Files []string `json:"files"`
}

// FilesHandler serves GET /v1/files.
func (a *API) FilesHandler(w http.ResponseWriter, _ *http.Request) {
	files := promptfile.List(a.promptDir)
	if files == nil {
		files = []string{}
	}
	writeJSON(w, FilesResponse{Files: files})
}
