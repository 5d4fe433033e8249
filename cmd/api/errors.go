package main

import (
	"errors"
	"net/http"

	"kuliner/internal/errs"
)

// errorResponse maps a service error onto the HTTP error taxonomy. Anything
// it does not recognise is an infrastructure failure.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		app.validationErrorResponse(w, r, ve)
	case errors.Is(err, errs.ErrInvalidCredentials):
		app.logger.Warnw("invalid credentials", "method", r.Method, "path", r.URL.Path)
		writeJSONError(w, http.StatusUnauthorized, "invalid_credentials", errs.ErrInvalidCredentials.Error())
	case errors.Is(err, errs.ErrUnauthenticated):
		app.unauthorizedErrorResponse(w, r, err)
	case errors.Is(err, errs.ErrPendingVerification):
		app.logger.Warnw("pending verification", "method", r.Method, "path", r.URL.Path)
		writeJSONError(w, http.StatusForbidden, "account_pending_verification", errs.ErrPendingVerification.Error())
	case errors.Is(err, errs.ErrForbidden):
		app.forbiddenResponse(w, r)
	case errors.Is(err, errs.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, errs.ErrConflict):
		app.conflictResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "internal_error", "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, "bad_request", err.Error())
}

func (app *application) validationErrorResponse(w http.ResponseWriter, r *http.Request, ve *errs.ValidationError) {
	app.logger.Warnw("validation failed", "method", r.Method, "path", r.URL.Path, "fields", ve.Fields)

	writeJSON(w, http.StatusUnprocessableEntity, &errorEnvelope{
		Success: false,
		Status:  http.StatusUnprocessableEntity,
		Code:    "validation_failed",
		Message: "the request contains invalid fields",
		Errors:  ve.Fields,
	})
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not_found", "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusConflict, "conflict", err.Error())
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusForbidden, "forbidden", errs.ErrForbidden.Error())
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, "unauthenticated", "unauthorized")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthenticated", "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded, retry after: "+retryAfter)
}
