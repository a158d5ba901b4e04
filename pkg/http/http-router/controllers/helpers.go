package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ruhan116/CLIR/pkg"

	"go.uber.org/zap"
)

type envelope map[string]interface{}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeJSON marshals data structure to encoded JSON response.
func (api *searchAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *searchAPI) errorResponseJSON(w http.ResponseWriter, r *http.Request,
	status int, code string, message string) {
	var response errorResponse
	response.Error.Code = code
	response.Error.Message = message

	js, err := json.MarshalIndent(response, "", "\t")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

func (api *searchAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponseJSON(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *searchAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponseJSON(w, r, http.StatusNotFound, "not_found", "the requested resource could not be found")
}

func (api *searchAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("server error", zap.String("url", r.URL.String()), zap.Error(err))

	var appErr *pkg.Error
	if errors.As(err, &appErr) {
		switch appErr.Code() {
		case pkg.ErrBadParamInput, pkg.ErrConfiguration:
			api.errorResponseJSON(w, r, http.StatusBadRequest, "bad_request", appErr.Error())
			return
		case pkg.ErrNotFound:
			api.NotFoundResponse(w, r)
			return
		case pkg.ErrCollaboratorUnavailable:
			api.errorResponseJSON(w, r, http.StatusServiceUnavailable, "unavailable", appErr.Error())
			return
		}
	}
	api.errorResponseJSON(w, r, http.StatusInternalServerError, "internal", pkg.MessageInternalServerError)
}
