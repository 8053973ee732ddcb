// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ba7besh/internal/models"
	"ba7besh/internal/store"
)

// Businesses groups the discovery endpoints: search, top-rated,
// personalized recommendations, and the review read surface.
type Businesses struct {
	businessStore *store.BusinessStore
	reviewStore   *store.ReviewStore
}

// NewBusinesses creates a new Businesses handler group.
func NewBusinesses(businessStore *store.BusinessStore, reviewStore *store.ReviewStore) *Businesses {
	return &Businesses{
		businessStore: businessStore,
		reviewStore:   reviewStore,
	}
}

// Search handles GET /businesses. Filters: search_term, category_id,
// repeatable tags, and a lat/lng/radius_km trio; page_size and page_number
// control paging.
func (h *Businesses) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize, verr := intParam(q, "page_size", models.DefaultPageSize)
	if verr != nil {
		writeError(w, r, verr)
		return
	}
	pageNumber, verr := intParam(q, "page_number", 1)
	if verr != nil {
		writeError(w, r, verr)
		return
	}
	center, verr := locationParam(q)
	if verr != nil {
		writeError(w, r, verr)
		return
	}

	req := models.SearchRequest{
		SearchTerm: strings.TrimSpace(q.Get("search_term")),
		CategoryID: strings.TrimSpace(q.Get("category_id")),
		Tags:       tagsParam(q),
		Center:     center,
		PageSize:   pageSize,
		PageNumber: pageNumber,
	}
	if raw := strings.TrimSpace(q.Get("radius_km")); raw != "" {
		radius, verr := floatParam(q, "radius_km", 0)
		if verr != nil {
			writeError(w, r, verr)
			return
		}
		req.RadiusKm = &radius
	}

	result, err := h.businessStore.Search(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// TopRated handles GET /businesses/top-rated. min_rating defaults to 4,
// limit to 10.
func (h *Businesses) TopRated(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minRating, verr := floatParam(q, "min_rating", models.DefaultMinimumRating)
	if verr != nil {
		writeError(w, r, verr)
		return
	}
	limit, verr := intParam(q, "limit", models.DefaultLimit)
	if verr != nil {
		writeError(w, r, verr)
		return
	}

	businesses, err := h.businessStore.TopRated(r.Context(), models.TopRatedRequest{
		MinimumRating: minRating,
		Limit:         limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, businesses)
}

// Recommendations handles GET /businesses/recommendations. user_id is
// required; lat/lng optionally refine ranking by proximity.
func (h *Businesses) Recommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, verr := intParam(q, "limit", models.DefaultLimit)
	if verr != nil {
		writeError(w, r, verr)
		return
	}
	location, verr := locationParam(q)
	if verr != nil {
		writeError(w, r, verr)
		return
	}

	businesses, err := h.businessStore.Recommendations(r.Context(), models.RecommendationRequest{
		UserID:   strings.TrimSpace(q.Get("user_id")),
		Location: location,
		Limit:    limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, businesses)
}

// Reviews handles GET /businesses/{id}/reviews, one page of the business's
// approved reviews.
func (h *Businesses) Reviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize, verr := intParam(q, "page_size", models.DefaultPageSize)
	if verr != nil {
		writeError(w, r, verr)
		return
	}
	pageNumber, verr := intParam(q, "page_number", 1)
	if verr != nil {
		writeError(w, r, verr)
		return
	}

	result, err := h.reviewStore.ListByBusiness(r.Context(), chi.URLParam(r, "id"), pageSize, pageNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RecentReviews handles GET /reviews/recent.
func (h *Businesses) RecentReviews(w http.ResponseWriter, r *http.Request) {
	limit, verr := intParam(r.URL.Query(), "limit", models.DefaultLimit)
	if verr != nil {
		writeError(w, r, verr)
		return
	}

	reviews, err := h.reviewStore.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
