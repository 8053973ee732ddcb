// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCategoryTree(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	rootID := createCategory(t, db, "Tree Root "+uuid.NewString()[:8])

	childID := uuid.NewString()
	if _, err := db.Exec(`
		INSERT INTO categories (id, ar_name, en_name, slug, parent_id)
		VALUES ($1, $2, $3, $4, $5)
	`, childID, "تصنيف فرعي", "Tree Child", "test-"+childID, rootID); err != nil {
		t.Fatalf("insert child category: %v", err)
	}

	// Third level: nesting must survive beyond parent/child.
	grandchildID := uuid.NewString()
	if _, err := db.Exec(`
		INSERT INTO categories (id, ar_name, en_name, slug, parent_id)
		VALUES ($1, $2, $3, $4, $5)
	`, grandchildID, "تصنيف حفيد", "Tree Grandchild", "test-"+grandchildID, childID); err != nil {
		t.Fatalf("insert grandchild category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE id = $1", grandchildID)
		db.Exec("DELETE FROM categories WHERE id = $1", childID)
	})

	deletedID := uuid.NewString()
	if _, err := db.Exec(`
		INSERT INTO categories (id, ar_name, en_name, slug, is_deleted)
		VALUES ($1, $2, $3, $4, TRUE)
	`, deletedID, "محذوف", "Tree Deleted", "test-"+deletedID); err != nil {
		t.Fatalf("insert deleted category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE id = $1", deletedID)
	})

	tree, err := s.Tree(context.Background())
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}

	var rootFound bool
	var rootChildren int
	for _, node := range tree {
		if node.ID == deletedID {
			t.Error("deleted category must not appear in the tree")
		}
		if node.ID == childID || node.ID == grandchildID {
			t.Error("nested category must nest under its parent, not appear as a root")
		}
		if node.ID == rootID {
			rootFound = true
			rootChildren = len(node.SubCategories)
			if len(node.SubCategories) == 1 {
				child := node.SubCategories[0]
				if child.ID != childID {
					t.Errorf("child: got %s, want %s", child.ID, childID)
				}
				if len(child.SubCategories) != 1 || child.SubCategories[0].ID != grandchildID {
					t.Errorf("grandchild: got %v, want [%s] nested under the child", child.SubCategories, grandchildID)
				}
			}
		}
		if node.SubCategories == nil {
			t.Errorf("root %s has nil SubCategories, want empty slice", node.ID)
		}
	}
	if !rootFound {
		t.Fatal("root category missing from tree")
	}
	if rootChildren != 1 {
		t.Errorf("root children: got %d, want 1", rootChildren)
	}
}

func TestTagList(t *testing.T) {
	db := testDB(t)
	s := NewTagStore(db)

	tag := "list-tag-" + uuid.NewString()[:8]
	gone := "gone-tag-" + uuid.NewString()[:8]

	// The same tag on two businesses must list once.
	createBusiness(t, db, testBusiness{tags: []string{tag}})
	id := createBusiness(t, db, testBusiness{tags: []string{tag, gone}})

	if _, err := db.Exec(
		"UPDATE business_tags SET is_deleted = TRUE WHERE business_id = $1 AND tag = $2",
		id, gone); err != nil {
		t.Fatalf("soft-delete tag: %v", err)
	}

	tags, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var count int
	for _, got := range tags {
		if got == tag {
			count++
		}
		if got == gone {
			t.Error("soft-deleted tag must not list")
		}
	}
	if count != 1 {
		t.Errorf("tag occurrences: got %d, want 1 (distinct)", count)
	}
}
