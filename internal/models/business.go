// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package models

// Location is a WGS84 coordinate pair. It describes both a business's
// position and the center point of a radius search.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CategoryInfo is the category shape embedded in business results.
type CategoryInfo struct {
	ID     string `json:"id"`
	ArName string `json:"ar_name"`
	EnName string `json:"en_name"`
}

// WorkingHours describes opening and closing times for one day of the week.
// Day is 0 (Sunday) through 6 (Saturday).
type WorkingHours struct {
	Day         int    `json:"day"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// BusinessSummary is a single business aggregate: scalar fields plus its
// deduplicated categories, tags, and working hours. DistanceKm is only
// populated when the query supplied a center point.
type BusinessSummary struct {
	ID           string         `json:"id"`
	ArName       string         `json:"ar_name"`
	EnName       string         `json:"en_name"`
	Location     Location       `json:"location"`
	DistanceKm   *float64       `json:"distance_km,omitempty"`
	City         string         `json:"city"`
	Type         string         `json:"type"`
	Categories   []CategoryInfo `json:"categories"`
	Tags         []string       `json:"tags"`
	WorkingHours []WorkingHours `json:"working_hours"`
}

// BusinessWithStats is a BusinessSummary enriched with review statistics for
// rating-based rankings. The statistics derive exclusively from approved,
// non-deleted reviews.
type BusinessWithStats struct {
	BusinessSummary
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// SearchResult is one page of businesses together with the size of the
// filtered-but-unpaginated set.
type SearchResult struct {
	Businesses []BusinessSummary `json:"businesses"`
	TotalCount int               `json:"total_count"`
	PageSize   int               `json:"page_size"`
	PageNumber int               `json:"page_number"`
}
