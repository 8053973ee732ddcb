// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package models

// CategoryTreeNode is one node of the public category tree. Top-level
// categories carry their children in SubCategories; the tree is at most
// two levels deep in practice but the shape allows arbitrary nesting.
type CategoryTreeNode struct {
	ID            string             `json:"id"`
	ArName        string             `json:"ar_name"`
	EnName        string             `json:"en_name"`
	Slug          string             `json:"slug"`
	SubCategories []CategoryTreeNode `json:"sub_categories"`
}
