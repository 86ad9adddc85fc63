package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/fyyur/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger   zerolog.Logger
	renderer *Renderer
	flashes  *Flasher
}

func NewResponder(logger zerolog.Logger, renderer *Renderer, flashes *Flasher) Responder {
	return Responder{logger: logger, renderer: renderer, flashes: flashes}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// Render writes the named page with the pending flash notices merged into
// data["flashes"].
func (r Responder) Render(w http.ResponseWriter, req *http.Request, status int, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	pending, _ := data["flashes"].([]Flash)
	data["flashes"] = append(r.flashes.Pop(w, req), pending...)

	// Buffered so a failing template never leaves a half-written page.
	var buf bytes.Buffer
	if err := r.renderer.Execute(&buf, page, data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("template execution failed")
		if page != "errors/500" {
			r.Render(w, req, http.StatusInternalServerError, "errors/500", nil)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// RenderError answers with the 404 page for not-found errors and the 500
// page for everything else.
func (r Responder) RenderError(w http.ResponseWriter, req *http.Request, err error) {
	if errs.IsNotFound(err) {
		r.Render(w, req, http.StatusNotFound, "errors/404", nil)
		return
	}
	r.logger.Error().Err(err).Str("kind", errs.Kind(err)).Str("path", req.URL.Path).Msg("request failed")
	r.Render(w, req, http.StatusInternalServerError, "errors/500", nil)
}

// NotFound is the router's fallback handler.
func (r Responder) NotFound(w http.ResponseWriter, req *http.Request) {
	r.Render(w, req, http.StatusNotFound, "errors/404", nil)
}

// Flash queues a notice. A cookie write failure only loses the notice.
func (r Responder) Flash(w http.ResponseWriter, req *http.Request, kind, message string) {
	if err := r.flashes.Add(w, req, kind, message); err != nil {
		r.logger.Warn().Err(err).Msg("could not store flash")
	}
}

// Redirect sends a 303 so that a browser follows a POST with a GET.
func (r Responder) Redirect(w http.ResponseWriter, req *http.Request, url string) {
	http.Redirect(w, req, url, http.StatusSeeOther)
}

// formErrorFlash describes a failed form submission for the re-rendered form.
func formErrorFlash(err error) []Flash {
	message := "The form has errors."
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) && apiErr.Details != "" {
		message = apiErr.Details
	} else if err != nil {
		message = err.Error()
	}
	return []Flash{{Kind: flashDanger, Message: message}}
}
