// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// TagStore serves the distinct tag vocabulary across all businesses.
type TagStore struct {
	db *sql.DB
}

// NewTagStore creates a new TagStore with the given database connection.
func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

// List returns every distinct non-deleted tag, sorted.
func (s *TagStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT tag
		FROM business_tags
		WHERE is_deleted = FALSE
		ORDER BY tag
	`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
