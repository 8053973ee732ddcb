// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"ba7besh/internal/models"
)

// ReviewStore serves the approved-review read surface: the reviews shown on
// a business page and the cross-business recent feed.
type ReviewStore struct {
	db *sql.DB
}

// NewReviewStore creates a new ReviewStore with the given database connection.
func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// ListByBusiness returns one page of a business's approved reviews, newest
// first, with the pre-pagination total. Returns ErrBusinessNotFound when the
// business does not exist or is soft-deleted.
func (s *ReviewStore) ListByBusiness(ctx context.Context, businessID string, pageSize, pageNumber int) (*models.BusinessReviewsResult, error) {
	if pageSize < 1 || pageSize > models.MaxPageSize {
		return nil, &models.ValidationError{Field: "page_size", Message: fmt.Sprintf("must be between 1 and %d", models.MaxPageSize)}
	}
	if pageNumber < 1 {
		return nil, &models.ValidationError{Field: "page_number", Message: "must be at least 1"}
	}

	exists, err := businessExists(ctx, s.db, businessID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBusinessNotFound
	}

	// Rooted at the count so a page past the end still reports the total
	// through a single count-only row.
	rows, err := s.db.QueryContext(ctx, `
		WITH filtered_reviews AS (
		    SELECT id, user_id, overall_rating::float8 AS overall_rating, content, created_at
		    FROM reviews
		    WHERE business_id = $1 AND status = 'approved' AND is_deleted = FALSE
		),
		paginated_reviews AS (
		    SELECT *
		    FROM filtered_reviews
		    ORDER BY created_at DESC, id
		    OFFSET $2 LIMIT $3
		)
		SELECT p.id, p.user_id, p.overall_rating, p.content, p.created_at, t.total_count
		FROM (SELECT COUNT(*)::int AS total_count FROM filtered_reviews) t
		LEFT JOIN paginated_reviews p ON TRUE
		ORDER BY p.created_at DESC, p.id
	`, businessID, (pageNumber-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list business reviews: %w", err)
	}
	defer rows.Close()

	result := &models.BusinessReviewsResult{
		Reviews:    []models.ReviewSummary{},
		PageSize:   pageSize,
		PageNumber: pageNumber,
	}
	for rows.Next() {
		var (
			id, reviewer, content sql.NullString
			rating                sql.NullFloat64
			createdAt             sql.NullTime
		)
		if err := rows.Scan(&id, &reviewer, &rating, &content, &createdAt, &result.TotalCount); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		if !id.Valid {
			continue
		}
		rv := models.ReviewSummary{
			ID:            id.String,
			ReviewerName:  reviewer.String,
			OverallRating: rating.Float64,
			CreatedAt:     createdAt.Time,
		}
		if content.Valid {
			rv.Content = &content.String
		}
		result.Reviews = append(result.Reviews, rv)
	}
	return result, rows.Err()
}

// ListRecent returns the latest approved reviews across all non-deleted
// businesses, newest first.
func (s *ReviewStore) ListRecent(ctx context.Context, limit int) ([]models.RecentReviewSummary, error) {
	if limit < 1 || limit > models.MaxLimit {
		return nil, &models.ValidationError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", models.MaxLimit)}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, r.overall_rating::float8, r.content, r.created_at,
		       b.id, b.ar_name, b.en_name, b.city
		FROM reviews r
		JOIN businesses b ON r.business_id = b.id AND b.is_deleted = FALSE
		WHERE r.status = 'approved' AND r.is_deleted = FALSE
		ORDER BY r.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.RecentReviewSummary{}
	for rows.Next() {
		var rv models.RecentReviewSummary
		if err := rows.Scan(
			&rv.ID, &rv.ReviewerName, &rv.OverallRating, &rv.Content, &rv.CreatedAt,
			&rv.BusinessID, &rv.BusinessArName, &rv.BusinessEnName, &rv.BusinessCity,
		); err != nil {
			return nil, fmt.Errorf("scan recent review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
