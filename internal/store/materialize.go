// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// materialize.go folds the flattened row stream produced by the business
// queries — one row per business × category × tag × working-hours
// combination — back into unique business aggregates. Getting this fold
// exactly right is what keeps join fan-out invisible to callers.
package store

import (
	"database/sql"

	"ba7besh/internal/models"
)

// businessRow is one flattened row of a business query. Every query in this
// package projects the same column shape so a single scan and fold serve
// them all; columns a query has no value for come back NULL. A count-only
// row — produced when the requested page lies past the end of the filtered
// set — has a NULL id and carries nothing but the total.
type businessRow struct {
	ID          sql.NullString
	ArName      sql.NullString
	EnName      sql.NullString
	City        sql.NullString
	Type        sql.NullString
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
	DistanceKm  sql.NullFloat64
	AvgRating   sql.NullFloat64
	ReviewCount sql.NullInt64
	CategoryID  sql.NullString
	CategoryAr  sql.NullString
	CategoryEn  sql.NullString
	Tag         sql.NullString
	Day         sql.NullInt64
	OpeningTime sql.NullString
	ClosingTime sql.NullString
	TotalCount  int
}

// scanBusinessRow reads the next row from a business query result set.
func scanBusinessRow(rows *sql.Rows) (businessRow, error) {
	var r businessRow
	err := rows.Scan(
		&r.ID, &r.ArName, &r.EnName, &r.City, &r.Type,
		&r.Latitude, &r.Longitude, &r.DistanceKm,
		&r.AvgRating, &r.ReviewCount,
		&r.CategoryID, &r.CategoryAr, &r.CategoryEn,
		&r.Tag,
		&r.Day, &r.OpeningTime, &r.ClosingTime,
		&r.TotalCount,
	)
	return r, err
}

// materializer folds flattened rows into unique business aggregates,
// preserving first-seen order. Rows belonging to the same business may
// arrive interleaved with other businesses' rows; only the order of first
// occurrence matters, and it reflects the query's ORDER BY.
type materializer struct {
	order []string
	byID  map[string]*models.BusinessWithStats
	total int
}

func newMaterializer() *materializer {
	return &materializer{byID: make(map[string]*models.BusinessWithStats)}
}

// add merges one row into the fold. Every row carries the total; a
// count-only row (NULL id) contributes nothing else. The first row seen for
// a business creates its aggregate (scalars, distance, stats); every row
// contributes its child values, deduplicated by category id, tag string,
// and working-hours day.
func (m *materializer) add(r businessRow) {
	m.total = r.TotalCount
	if !r.ID.Valid {
		return
	}

	b, ok := m.byID[r.ID.String]
	if !ok {
		b = &models.BusinessWithStats{
			BusinessSummary: models.BusinessSummary{
				ID:     r.ID.String,
				ArName: r.ArName.String,
				EnName: r.EnName.String,
				Location: models.Location{
					Latitude:  r.Latitude.Float64,
					Longitude: r.Longitude.Float64,
				},
				City:         r.City.String,
				Type:         r.Type.String,
				Categories:   []models.CategoryInfo{},
				Tags:         []string{},
				WorkingHours: []models.WorkingHours{},
			},
		}
		if r.DistanceKm.Valid {
			d := r.DistanceKm.Float64
			b.DistanceKm = &d
		}
		if r.AvgRating.Valid {
			b.AverageRating = r.AvgRating.Float64
		}
		if r.ReviewCount.Valid {
			b.ReviewCount = int(r.ReviewCount.Int64)
		}
		m.byID[r.ID.String] = b
		m.order = append(m.order, r.ID.String)
	}

	if r.CategoryID.Valid && !hasCategory(b.Categories, r.CategoryID.String) {
		b.Categories = append(b.Categories, models.CategoryInfo{
			ID:     r.CategoryID.String,
			ArName: r.CategoryAr.String,
			EnName: r.CategoryEn.String,
		})
	}
	if r.Tag.Valid && r.Tag.String != "" && !hasTag(b.Tags, r.Tag.String) {
		b.Tags = append(b.Tags, r.Tag.String)
	}
	if r.Day.Valid && !hasDay(b.WorkingHours, int(r.Day.Int64)) {
		b.WorkingHours = append(b.WorkingHours, models.WorkingHours{
			Day:         int(r.Day.Int64),
			OpeningTime: r.OpeningTime.String,
			ClosingTime: r.ClosingTime.String,
		})
	}
}

// totalCount is the size of the filtered-but-unpaginated set, as carried on
// every row — including a count-only row for an empty page. Zero when no
// rows were folded at all.
func (m *materializer) totalCount() int {
	return m.total
}

// withStats returns the aggregates in first-seen order.
func (m *materializer) withStats() []models.BusinessWithStats {
	out := make([]models.BusinessWithStats, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.byID[id])
	}
	return out
}

// summaries returns the aggregates in first-seen order, without stats.
func (m *materializer) summaries() []models.BusinessSummary {
	out := make([]models.BusinessSummary, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id].BusinessSummary)
	}
	return out
}

func hasCategory(cats []models.CategoryInfo, id string) bool {
	for _, c := range cats {
		if c.ID == id {
			return true
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func hasDay(hours []models.WorkingHours, day int) bool {
	for _, wh := range hours {
		if wh.Day == day {
			return true
		}
	}
	return false
}
