// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ReviewSummary is one approved review as shown on a business page.
// ReviewerName is the opaque external user identifier of the author.
type ReviewSummary struct {
	ID            string    `json:"id"`
	ReviewerName  string    `json:"reviewer_name"`
	OverallRating float64   `json:"overall_rating"`
	Content       *string   `json:"content,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecentReviewSummary is a ReviewSummary enriched with the business it
// belongs to, used for the cross-business recent-reviews feed.
type RecentReviewSummary struct {
	ReviewSummary
	BusinessID     string `json:"business_id"`
	BusinessArName string `json:"business_ar_name"`
	BusinessEnName string `json:"business_en_name"`
	BusinessCity   string `json:"business_city"`
}

// BusinessReviewsResult is one page of a business's approved reviews.
type BusinessReviewsResult struct {
	Reviews    []ReviewSummary `json:"reviews"`
	TotalCount int             `json:"total_count"`
	PageSize   int             `json:"page_size"`
	PageNumber int             `json:"page_number"`
}
