package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type submitReviewPayload struct {
	ListingID int64  `json:"listing_id" example:"12"`
	Rating    int    `json:"rating" example:"5"`
	Comment   string `json:"comment" example:"Gudegnya manis dan legit"`
}

// submitReviewHandler godoc
//
//	@Summary		Submit a review
//	@Description	Any signed-in account may review a listing it can see. Reviews wait for moderation.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		submitReviewPayload	true	"Review"
//	@Success		201		{object}	reviews.Review
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/reviews [post]
func (app *application) submitReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload submitReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.moderation.Submit(r.Context(), getIdentityFromContext(r), payload.ListingID, payload.Rating, payload.Comment)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listApprovedReviewsHandler godoc
//
//	@Summary		Approved reviews of a listing
//	@Description	Newest first, with count and average rating. Only published listings have public reviews.
//	@Tags			reviews
//	@Produce		json
//	@Param			listingID	path		string	true	"Listing ID or slug"
//	@Success		200			{object}	moderation.ApprovedReviews
//	@Failure		404			{object}	ErrorResponse
//	@Router			/listings/{listingID}/reviews [get]
func (app *application) listApprovedReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref := chi.URLParam(r, "listingID")

	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		l, err := app.catalog.Get(ctx, nil, ref)
		if err != nil {
			app.errorResponse(w, r, err)
			return
		}
		id = l.ID
	}

	out, err := app.moderation.ListApprovedFor(ctx, id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	out.Reviews = nonNil(out.Reviews)

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}
