// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Request defaults and bounds. Page sizes above MaxPageSize are rejected
// rather than clamped so callers notice the mistake.
const (
	DefaultPageSize      = 20
	MaxPageSize          = 100
	DefaultLimit         = 10
	MaxLimit             = 100
	DefaultMinimumRating = 4
	MaxSearchTermLen     = 100
)

// ValidationError describes a request rejected at the boundary, before any
// store round trip. Handlers map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SearchRequest carries the filters and paging for a business search.
// Center and RadiusKm must be provided together or not at all.
type SearchRequest struct {
	SearchTerm string
	CategoryID string
	Tags       []string
	Center     *Location
	RadiusKm   *float64
	PageSize   int
	PageNumber int
}

// Validate checks paging bounds, the radius/center pairing, and the category
// id format. It returns the first violation found, or nil.
func (r *SearchRequest) Validate() *ValidationError {
	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		return &ValidationError{"page_size", fmt.Sprintf("must be between 1 and %d", MaxPageSize)}
	}
	if r.PageNumber < 1 {
		return &ValidationError{"page_number", "must be at least 1"}
	}
	if len(r.SearchTerm) > MaxSearchTermLen {
		return &ValidationError{"search_term", fmt.Sprintf("must not exceed %d characters", MaxSearchTermLen)}
	}
	if r.CategoryID != "" {
		if err := uuid.Validate(r.CategoryID); err != nil {
			return &ValidationError{"category_id", "is not a valid category id"}
		}
	}
	if (r.Center == nil) != (r.RadiusKm == nil) {
		return &ValidationError{"radius_km", "center location and radius must be provided together"}
	}
	if r.RadiusKm != nil && *r.RadiusKm <= 0 {
		return &ValidationError{"radius_km", "must be greater than 0"}
	}
	return nil
}

// TopRatedRequest selects businesses ranked by average rating.
type TopRatedRequest struct {
	MinimumRating float64
	Limit         int
}

// Validate checks the rating threshold and result limit.
func (r *TopRatedRequest) Validate() *ValidationError {
	if r.MinimumRating < 1 || r.MinimumRating > 5 {
		return &ValidationError{"minimum_rating", "must be between 1 and 5"}
	}
	if r.Limit < 1 || r.Limit > MaxLimit {
		return &ValidationError{"limit", fmt.Sprintf("must be between 1 and %d", MaxLimit)}
	}
	return nil
}

// RecommendationRequest asks for personalized picks for one user. Location
// is optional; when present it breaks ranking ties by proximity.
type RecommendationRequest struct {
	UserID   string
	Location *Location
	Limit    int
}

// Validate checks the user id and result limit.
func (r *RecommendationRequest) Validate() *ValidationError {
	if r.UserID == "" {
		return &ValidationError{"user_id", "is required"}
	}
	if r.Limit < 1 || r.Limit > MaxLimit {
		return &ValidationError{"limit", fmt.Sprintf("must be between 1 and %d", MaxLimit)}
	}
	return nil
}
