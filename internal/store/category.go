// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"ba7besh/internal/models"
)

// CategoryStore serves the public category tree.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Tree returns all non-deleted categories assembled into a tree of arbitrary
// depth, roots sorted by English name, children likewise at every level.
func (s *CategoryStore) Tree(ctx context.Context) ([]models.CategoryTreeNode, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ar_name, en_name, slug, parent_id
		FROM categories
		WHERE is_deleted = FALSE
		ORDER BY en_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	type flatCategory struct {
		node     models.CategoryTreeNode
		parentID sql.NullString
	}
	var flat []flatCategory
	for rows.Next() {
		var fc flatCategory
		if err := rows.Scan(&fc.node.ID, &fc.node.ArName, &fc.node.EnName, &fc.node.Slug, &fc.parentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		fc.node.SubCategories = []models.CategoryTreeNode{}
		flat = append(flat, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Group child indexes under their parent id, preserving the sorted
	// order, then assemble each root's subtree recursively so nesting
	// survives to any depth.
	children := make(map[string][]int)
	for i, fc := range flat {
		if fc.parentID.Valid {
			children[fc.parentID.String] = append(children[fc.parentID.String], i)
		}
	}

	var build func(i int) models.CategoryTreeNode
	build = func(i int) models.CategoryTreeNode {
		node := flat[i].node
		for _, ci := range children[node.ID] {
			node.SubCategories = append(node.SubCategories, build(ci))
		}
		return node
	}

	tree := []models.CategoryTreeNode{}
	for i, fc := range flat {
		if fc.parentID.Valid {
			continue
		}
		tree = append(tree, build(i))
	}
	return tree, nil
}
