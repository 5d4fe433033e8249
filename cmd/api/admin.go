package main

import (
	"context"
	"net/http"
	"time"

	"kuliner/internal/access"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/identity"
)

// adminStatsHandler godoc
//
//	@Summary		Admin dashboard totals
//	@Description	Listing count, verified partners, visitors and partners waiting for verification.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	admindashboard.Stats
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/stats [get]
func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	if err := access.Require(getIdentityFromContext(r), access.OpViewStats, nil); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	out, err := app.store.Dashboard.GetStats(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	_ = app.jsonResponse(w, http.StatusOK, out)
}

// adminListPendingPartnersHandler godoc
//
//	@Summary		Partners waiting for verification
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		accounts.Account
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/partners/pending [get]
func (app *application) adminListPendingPartnersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.identity.ListPendingPartners(r.Context(), getIdentityFromContext(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	_ = app.jsonResponse(w, http.StatusOK, nonNil(list))
}

type VerificationPayload struct {
	Decision identity.Decision `json:"decision" example:"approve"`
}

// adminVerifyPartnerHandler godoc
//
//	@Summary		Approve or reject a partner
//	@Description	Idempotent. Rejecting a verified partner can unpublish its listings; the account is never deleted.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int					true	"Partner account ID"
//	@Param			payload	body		VerificationPayload	true	"approve or reject"
//	@Success		200		{object}	identity.VerificationResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/partners/{userID}/verification [post]
func (app *application) adminVerifyPartnerHandler(w http.ResponseWriter, r *http.Request) {
	partnerID, err := parseIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload VerificationPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	out, err := app.identity.DecidePartner(r.Context(), getIdentityFromContext(r), partnerID, payload.Decision)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminListListingsHandler godoc
//
//	@Summary		Every listing with its owner
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		listings.Listing
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/listings [get]
func (app *application) adminListListingsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.catalog.ListAll(r.Context(), getIdentityFromContext(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	_ = app.jsonResponse(w, http.StatusOK, nonNil(list))
}

// adminListReviewsHandler godoc
//
//	@Summary		Review moderation queue
//	@Description	Every review in any state, with author and listing, plus the pending count.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	moderation.Queue
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews [get]
func (app *application) adminListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	q, err := app.moderation.ListAll(r.Context(), getIdentityFromContext(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	q.Reviews = nonNil(q.Reviews)

	_ = app.jsonResponse(w, http.StatusOK, q)
}

type ReviewStatusPayload struct {
	Status reviews.Status `json:"status" example:"approved"`
}

// adminSetReviewStatusHandler godoc
//
//	@Summary		Moderate a review
//	@Description	Moves a review to pending, approved or rejected. Any transition is allowed.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int					true	"Review ID"
//	@Param			payload		body		ReviewStatusPayload	true	"New status"
//	@Success		200			{object}	reviews.Review
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/{reviewID}/status [patch]
func (app *application) adminSetReviewStatusHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ReviewStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	out, err := app.moderation.SetStatus(r.Context(), getIdentityFromContext(r), reviewID, payload.Status)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}
