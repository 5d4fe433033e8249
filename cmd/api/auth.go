package main

import (
	"net/http"

	"kuliner/internal/auth"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/identity"
)

// ErrorResponse represents the standard error format for API responses.
//
//	@name			ErrorResponse
//	@description	Standard error response format returned by every endpoint
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Status  int               `json:"status" example:"422"`
	Code    string            `json:"code" example:"validation_failed"`
	Message string            `json:"message" example:"the request contains invalid fields"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// GrantEnvelope wraps a token grant. made for swagger doc success output
type GrantEnvelope struct {
	Data auth.Grant `json:"data"`
}

// registerVisitorHandler godoc
//
//	@Summary		Registers a visitor
//	@Description	Creates a visitor account and signs it in straight away.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		identity.VisitorRegistration	true	"Visitor details"
//	@Success		201		{object}	GrantEnvelope
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Email already registered"
//	@Failure		422		{object}	ErrorResponse
//	@Router			/authentication/visitor [post]
func (app *application) registerVisitorHandler(w http.ResponseWriter, r *http.Request) {
	var payload identity.VisitorRegistration
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	account, err := app.identity.RegisterVisitor(ctx, payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	grant, err := app.issuer.Issue(ctx, account)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, grant); err != nil {
		app.internalServerError(w, r, err)
	}
}

// registerPartnerHandler godoc
//
//	@Summary		Registers a partner
//	@Description	Creates an unverified partner account. The partner cannot sign in until an admin approves it.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		identity.PartnerRegistration	true	"Partner and business details"
//	@Success		201		{object}	accounts.Account
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/authentication/partner [post]
func (app *application) registerPartnerHandler(w http.ResponseWriter, r *http.Request) {
	var payload identity.PartnerRegistration
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	account, err := app.identity.RegisterPartner(r.Context(), payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	out := struct {
		User    *accounts.Account `json:"user"`
		Message string            `json:"message"`
	}{account, "registration received, waiting for admin verification"}

	if err := app.jsonResponse(w, http.StatusCreated, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateTokenPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createTokenHandler godoc
//
//	@Summary		Login to get a token
//	@Description	Exchanges email and password for a bearer token.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateTokenPayload	true	"User credentials"
//	@Success		200		{object}	GrantEnvelope
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse	"Invalid email or password"
//	@Failure		403		{object}	ErrorResponse	"Partner waiting for verification"
//	@Router			/authentication/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	grant, err := app.issuer.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.logger.Infow("user logged in", "account_id", grant.Account.ID, "role", grant.Role)

	if err := app.jsonResponse(w, http.StatusOK, grant); err != nil {
		app.internalServerError(w, r, err)
	}
}

// refreshTokenHandler godoc
//
//	@Summary		Rotate a token
//	@Description	Ends the presented session and returns a fresh token with a full lifetime.
//	@Tags			authentication
//	@Produce		json
//	@Success		200	{object}	GrantEnvelope
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/authentication/refresh [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	grant, err := app.issuer.Rotate(r.Context(), token)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, grant); err != nil {
		app.internalServerError(w, r, err)
	}
}
