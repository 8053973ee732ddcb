// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"ba7besh/internal/models"
)

// minReviewSample is the minimum number of approved reviews a business needs
// before rating-based rankings will consider it. Guards against a single
// five-star review inflating a business to the top.
const minReviewSample = 3

// BusinessStore runs the search, top-rated, and recommendation queries.
// Every operation is a single round trip: the filtered set is ordered and
// sliced first, and child collections are joined onto the sliced businesses
// only — joining before the slice would let fan-out break LIMIT.
type BusinessStore struct {
	db *sql.DB
}

// NewBusinessStore creates a new BusinessStore with the given database connection.
func NewBusinessStore(db *sql.DB) *BusinessStore {
	return &BusinessStore{db: db}
}

// searchSQL is the paged search query. Fragments filled in order: the
// distance_km projection, the composed WHERE body, and the offset/limit
// placeholders. The total count is computed against the filtered CTE, so it
// is independent of both pagination and child-row fan-out. The query is
// rooted at the count so a page past the end of the filtered set still
// returns one count-only row (NULL business columns) instead of nothing.
const searchSQL = `
WITH filtered_businesses AS (
    SELECT b.id, b.ar_name, b.en_name, b.city, b.type, b.created_at,
           ST_Y(b.location::geometry) AS latitude,
           ST_X(b.location::geometry) AS longitude,
           %s AS distance_km
    FROM businesses b
    WHERE %s
),
paginated_businesses AS (
    SELECT *
    FROM filtered_businesses
    ORDER BY created_at DESC, id
    OFFSET %s LIMIT %s
)
SELECT p.id, p.ar_name, p.en_name, p.city, p.type,
       p.latitude, p.longitude, p.distance_km,
       NULL::float8 AS average_rating,
       NULL::int AS review_count,
       c.id AS category_id, c.ar_name AS category_ar_name, c.en_name AS category_en_name,
       bt.tag,
       wh.day, wh.opening_time::text AS opening_time, wh.closing_time::text AS closing_time,
       t.total_count
FROM (SELECT COUNT(*)::int AS total_count FROM filtered_businesses) t
LEFT JOIN paginated_businesses p ON TRUE
LEFT JOIN business_categories bc ON p.id = bc.business_id AND bc.is_deleted = FALSE
LEFT JOIN categories c ON bc.category_id = c.id AND c.is_deleted = FALSE
LEFT JOIN business_tags bt ON p.id = bt.business_id AND bt.is_deleted = FALSE
LEFT JOIN business_working_hours wh ON p.id = wh.business_id AND wh.is_deleted = FALSE
ORDER BY p.created_at DESC, p.id`

// Search returns one page of businesses matching the request's filters,
// newest first, with the pre-pagination total. An empty match is a valid
// result, not an error.
func (s *BusinessStore) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	p := newPredicate()
	if req.SearchTerm != "" {
		p.textFilter(req.SearchTerm)
	}
	if req.CategoryID != "" {
		p.categoryFilter(req.CategoryID)
	}
	if len(req.Tags) > 0 {
		p.tagFilter(req.Tags)
	}

	distanceSel := "NULL::float8"
	if req.Center != nil {
		lngPh := p.bind(req.Center.Longitude)
		latPh := p.bind(req.Center.Latitude)
		distanceSel = distanceKmExpr("b.location", lngPh, latPh)
		p.where(withinRadiusExpr("b.location", lngPh, latPh, p.bind(*req.RadiusKm*1000)))
	}

	offsetPh := p.bind((req.PageNumber - 1) * req.PageSize)
	limitPh := p.bind(req.PageSize)
	query := fmt.Sprintf(searchSQL, distanceSel, p.clause(), offsetPh, limitPh)

	m, err := s.queryBusinesses(ctx, query, p.args...)
	if err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}
	return &models.SearchResult{
		Businesses: m.summaries(),
		TotalCount: m.totalCount(),
		PageSize:   req.PageSize,
		PageNumber: req.PageNumber,
	}, nil
}

// topRatedSQL ranks businesses by average rating, then review volume. Only
// businesses clearing both the sample-size gate and the caller's minimum
// average are eligible. The rank is fixed and the set sliced before child
// joins; the outer ORDER BY restores it after the joins.
const topRatedSQL = `
WITH business_ratings AS (
    SELECT business_id,
           AVG(overall_rating)::float8 AS avg_rating,
           COUNT(*)::int AS review_count
    FROM reviews
    WHERE status = 'approved' AND is_deleted = FALSE
    GROUP BY business_id
    HAVING COUNT(*) >= $1 AND AVG(overall_rating) >= $2
),
ranked_businesses AS (
    SELECT b.id, b.ar_name, b.en_name, b.city, b.type,
           ST_Y(b.location::geometry) AS latitude,
           ST_X(b.location::geometry) AS longitude,
           br.avg_rating, br.review_count,
           ROW_NUMBER() OVER (ORDER BY br.avg_rating DESC, br.review_count DESC) AS rank
    FROM businesses b
    JOIN business_ratings br ON b.id = br.business_id
    WHERE b.is_deleted = FALSE
    ORDER BY rank
    LIMIT $3
)
SELECT r.id, r.ar_name, r.en_name, r.city, r.type,
       r.latitude, r.longitude,
       NULL::float8 AS distance_km,
       r.avg_rating AS average_rating, r.review_count,
       c.id AS category_id, c.ar_name AS category_ar_name, c.en_name AS category_en_name,
       bt.tag,
       wh.day, wh.opening_time::text AS opening_time, wh.closing_time::text AS closing_time,
       0 AS total_count
FROM ranked_businesses r
LEFT JOIN business_categories bc ON r.id = bc.business_id AND bc.is_deleted = FALSE
LEFT JOIN categories c ON bc.category_id = c.id AND c.is_deleted = FALSE
LEFT JOIN business_tags bt ON r.id = bt.business_id AND bt.is_deleted = FALSE
LEFT JOIN business_working_hours wh ON r.id = wh.business_id AND wh.is_deleted = FALSE
ORDER BY r.rank`

// TopRated returns up to Limit businesses with at least minReviewSample
// approved reviews and an average rating of at least MinimumRating, best
// rated first.
func (s *BusinessStore) TopRated(ctx context.Context, req models.TopRatedRequest) ([]models.BusinessWithStats, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	m, err := s.queryBusinesses(ctx, topRatedSQL, minReviewSample, req.MinimumRating, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("top rated businesses: %w", err)
	}
	return m.withStats(), nil
}

// recommendationsSQL scores candidates by how many categories they share
// with the user's liked set. Fragments filled in order: the user id
// placeholder (liked categories), the distance_km projection, the ranking
// order, the composed WHERE body, and the limit placeholder.
//
// Candidates only need an overlap row when they match a liked category; the
// LEFT JOIN plus COALESCE keeps zero-overlap businesses in play so users
// with no rating history still get rating-ranked results.
const recommendationsSQL = `
WITH liked_categories AS (
    SELECT DISTINCT bc.category_id
    FROM reviews r
    JOIN business_categories bc ON r.business_id = bc.business_id AND bc.is_deleted = FALSE
    WHERE r.user_id = %s
      AND r.overall_rating >= 4
      AND r.status = 'approved'
      AND r.is_deleted = FALSE
),
category_matches AS (
    SELECT bc.business_id, COUNT(DISTINCT bc.category_id)::int AS matching_categories
    FROM business_categories bc
    JOIN liked_categories lc ON bc.category_id = lc.category_id
    WHERE bc.is_deleted = FALSE
    GROUP BY bc.business_id
),
business_ratings AS (
    SELECT business_id,
           AVG(overall_rating)::float8 AS avg_rating,
           COUNT(*)::int AS review_count
    FROM reviews
    WHERE status = 'approved' AND is_deleted = FALSE
    GROUP BY business_id
    HAVING COUNT(*) >= %s
),
ranked_businesses AS (
    SELECT b.id, b.ar_name, b.en_name, b.city, b.type,
           ST_Y(b.location::geometry) AS latitude,
           ST_X(b.location::geometry) AS longitude,
           %s AS distance_km,
           br.avg_rating, br.review_count,
           ROW_NUMBER() OVER (ORDER BY %s) AS rank
    FROM businesses b
    JOIN business_ratings br ON b.id = br.business_id
    LEFT JOIN category_matches cm ON b.id = cm.business_id
    WHERE %s
    ORDER BY rank
    LIMIT %s
)
SELECT r.id, r.ar_name, r.en_name, r.city, r.type,
       r.latitude, r.longitude, r.distance_km,
       r.avg_rating AS average_rating, r.review_count,
       c.id AS category_id, c.ar_name AS category_ar_name, c.en_name AS category_en_name,
       bt.tag,
       wh.day, wh.opening_time::text AS opening_time, wh.closing_time::text AS closing_time,
       0 AS total_count
FROM ranked_businesses r
LEFT JOIN business_categories bc ON r.id = bc.business_id AND bc.is_deleted = FALSE
LEFT JOIN categories c ON bc.category_id = c.id AND c.is_deleted = FALSE
LEFT JOIN business_tags bt ON r.id = bt.business_id AND bt.is_deleted = FALSE
LEFT JOIN business_working_hours wh ON r.id = wh.business_id AND wh.is_deleted = FALSE
ORDER BY r.rank`

// Recommendations returns personalized picks for a user: businesses ranked
// by liked-category overlap, then average rating, then proximity when a
// location was supplied. Businesses the user has already reviewed — in any
// status — are excluded outright, never just demoted. An unknown user simply
// has an empty liked set.
func (s *BusinessStore) Recommendations(ctx context.Context, req models.RecommendationRequest) ([]models.BusinessWithStats, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	p := newPredicate()
	userPh := p.bind(req.UserID)
	p.where(fmt.Sprintf(
		"NOT EXISTS (SELECT 1 FROM reviews ur WHERE ur.business_id = b.id AND ur.user_id = %s AND ur.is_deleted = FALSE)",
		userPh))

	distanceSel := "NULL::float8"
	orderBy := "COALESCE(cm.matching_categories, 0) DESC, br.avg_rating DESC"
	if req.Location != nil {
		lngPh := p.bind(req.Location.Longitude)
		latPh := p.bind(req.Location.Latitude)
		distanceSel = distanceKmExpr("b.location", lngPh, latPh)
		orderBy += ", " + distanceSel + " ASC"
	}

	samplePh := p.bind(minReviewSample)
	limitPh := p.bind(req.Limit)
	query := fmt.Sprintf(recommendationsSQL, userPh, samplePh, distanceSel, orderBy, p.clause(), limitPh)

	m, err := s.queryBusinesses(ctx, query, p.args...)
	if err != nil {
		return nil, fmt.Errorf("recommend businesses: %w", err)
	}
	return m.withStats(), nil
}

// queryBusinesses executes one business query and folds its flattened rows.
// On context cancellation the driver aborts the round trip and the error
// propagates; no partial fold is ever returned.
func (s *BusinessStore) queryBusinesses(ctx context.Context, query string, args ...any) (*materializer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := newMaterializer()
	for rows.Next() {
		r, err := scanBusinessRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business row: %w", err)
		}
		m.add(r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// businessExists reports whether a non-deleted business with the given id
// exists. Shared by the stores that treat existence as a precondition.
func businessExists(ctx context.Context, db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM businesses WHERE id = $1 AND is_deleted = FALSE)",
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check business exists: %w", err)
	}
	return exists, nil
}
