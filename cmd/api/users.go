package main

import (
	"errors"
	"net/http"
	"strconv"

	"kuliner/internal/access"
	"kuliner/internal/identity"

	"github.com/go-chi/chi/v5"
)

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// logoutHandler godoc
//
//	@Summary		Logout
//	@Description	Ends the session behind the bearer token. Works for partners awaiting verification.
//	@Tags			users
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/users/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	if err := app.issuer.Invalidate(r.Context(), token); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getCurrentUserHandler godoc
//
//	@Summary		Current account
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	accounts.Account
//	@Failure		401	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/users/me [get]
func (app *application) getCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	p := getPrincipalFromContext(r)
	if err := access.Require(getIdentityFromContext(r), access.OpViewSelf, nil); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, p.Account); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCurrentUserHandler godoc
//
//	@Summary		Update own profile
//	@Description	Name is always replaced. Business name applies to partners only; password is optional.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		identity.ProfileUpdate	true	"Profile"
//	@Success		200		{object}	accounts.Account
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/users/me [put]
func (app *application) updateCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	who := getIdentityFromContext(r)
	if who == nil {
		app.unauthorizedErrorResponse(w, r, errNoBearer)
		return
	}
	app.updateProfile(w, r, who.AccountID)
}

// updateUserHandler godoc
//
//	@Summary		Update a profile
//	@Description	Accounts may update themselves; admins may update anyone.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"Account ID"
//	@Param			payload	body		identity.ProfileUpdate	true	"Profile"
//	@Success		200		{object}	accounts.Account
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/users/{userID} [put]
func (app *application) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	app.updateProfile(w, r, userID)
}

func (app *application) updateProfile(w http.ResponseWriter, r *http.Request, targetID int64) {
	var payload identity.ProfileUpdate
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	account, err := app.identity.UpdateProfile(r.Context(), getIdentityFromContext(r), targetID, payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, account); err != nil {
		app.internalServerError(w, r, err)
	}
}
