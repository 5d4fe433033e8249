package main

import (
	"net/http"

	"kuliner/internal/domain/listings"

	"github.com/go-chi/chi/v5"
)

// listPublicListingsHandler godoc
//
//	@Summary		Published listings
//	@Description	Every published listing, newest first. Drafts never appear here.
//	@Tags			listings
//	@Produce		json
//	@Success		200	{array}		listings.Listing
//	@Failure		500	{object}	ErrorResponse
//	@Router			/listings [get]
func (app *application) listPublicListingsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.catalog.ListPublic(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, nonNil(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getListingHandler godoc
//
//	@Summary		Get a listing
//	@Description	Looks a listing up by id or slug. Drafts are visible to their owner and admins only.
//	@Tags			listings
//	@Produce		json
//	@Param			listingID	path		string	true	"Listing ID or slug"
//	@Success		200			{object}	listings.Listing
//	@Failure		401			{object}	ErrorResponse	"A token was sent but is invalid"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/listings/{listingID} [get]
func (app *application) getListingHandler(w http.ResponseWriter, r *http.Request) {
	l, err := app.catalog.Get(r.Context(), getIdentityFromContext(r), chi.URLParam(r, "listingID"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, l); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOwnListingsHandler godoc
//
//	@Summary		My listings
//	@Description	Drafts and published listings of the calling partner.
//	@Tags			listings
//	@Produce		json
//	@Success		200	{array}		listings.Listing
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/listings/mine [get]
func (app *application) listOwnListingsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.catalog.ListOwn(r.Context(), getIdentityFromContext(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, nonNil(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createListingHandler godoc
//
//	@Summary		Create a listing
//	@Description	Verified partners only. The slug is generated and never changes.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		listings.Fields	true	"Listing"
//	@Success		201		{object}	listings.Listing
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/listings [post]
func (app *application) createListingHandler(w http.ResponseWriter, r *http.Request) {
	var payload listings.Fields
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	l, err := app.catalog.Create(r.Context(), getIdentityFromContext(r), payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, l); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateListingHandler godoc
//
//	@Summary		Update a listing
//	@Description	Replaces every field. Owner or admin only.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			listingID	path		int				true	"Listing ID"
//	@Param			payload		body		listings.Fields	true	"Listing"
//	@Success		200			{object}	listings.Listing
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/listings/{listingID} [put]
func (app *application) updateListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "listingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload listings.Fields
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	l, err := app.catalog.Update(r.Context(), getIdentityFromContext(r), id, payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, l); err != nil {
		app.internalServerError(w, r, err)
	}
}

type ListingStatusPayload struct {
	Status listings.Status `json:"status" example:"published"`
}

// setListingStatusHandler godoc
//
//	@Summary		Publish or unpublish
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			listingID	path		int						true	"Listing ID"
//	@Param			payload		body		ListingStatusPayload	true	"draft or published"
//	@Success		200			{object}	listings.Listing
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/listings/{listingID}/status [patch]
func (app *application) setListingStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "listingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ListingStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	l, err := app.catalog.SetStatus(r.Context(), getIdentityFromContext(r), id, payload.Status)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, l); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteListingHandler godoc
//
//	@Summary		Delete a listing
//	@Description	Removes the listing with its reviews and purges its hosted images.
//	@Tags			listings
//	@Param			listingID	path	int	true	"Listing ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/listings/{listingID} [delete]
func (app *application) deleteListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "listingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.catalog.Delete(r.Context(), getIdentityFromContext(r), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil keeps empty collections as [] on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
