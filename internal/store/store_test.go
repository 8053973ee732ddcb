// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// Shared helpers for store integration tests. These tests require a running
// PostgreSQL instance with PostGIS; they skip when none is available.
// Fixtures carry uuid-suffixed ids and unique tags so runs never collide
// with seeded or concurrent data.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"

	"ba7besh/internal/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "ba7besh")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "ba7besh")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := database.Connect(dsn)
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Skipf("skipping: migrations failed: %v", err)
	}
	return db
}

// testBusiness describes a fixture business to insert.
type testBusiness struct {
	id        string
	arName    string
	enName    string
	lat       float64
	lng       float64
	city      string
	deleted   bool
	tags      []string
	catIDs    []string
	hourDays  []int
}

// createBusiness inserts a business fixture and registers cleanup of it and
// all its child rows.
func createBusiness(t *testing.T, db *sql.DB, b testBusiness) string {
	t.Helper()

	if b.id == "" {
		b.id = "biz-" + uuid.NewString()
	}
	if b.arName == "" {
		b.arName = "مطعم تجريبي"
	}
	if b.enName == "" {
		b.enName = "Test Business " + b.id[len(b.id)-8:]
	}
	if b.city == "" {
		b.city = "Damascus"
	}
	if b.lat == 0 && b.lng == 0 {
		b.lat, b.lng = 33.51, 36.29
	}

	_, err := db.Exec(`
		INSERT INTO businesses (id, ar_name, en_name, location, city, type, is_deleted)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6, 'restaurant', $7)
	`, b.id, b.arName, b.enName, b.lng, b.lat, b.city, b.deleted)
	if err != nil {
		t.Fatalf("insert business: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM reviews WHERE business_id = $1", b.id)
		db.Exec("DELETE FROM business_working_hours WHERE business_id = $1", b.id)
		db.Exec("DELETE FROM business_tags WHERE business_id = $1", b.id)
		db.Exec("DELETE FROM business_categories WHERE business_id = $1", b.id)
		db.Exec("DELETE FROM businesses WHERE id = $1", b.id)
	})

	for _, tag := range b.tags {
		if _, err := db.Exec(
			"INSERT INTO business_tags (business_id, tag) VALUES ($1, $2)", b.id, tag); err != nil {
			t.Fatalf("insert tag: %v", err)
		}
	}
	for _, catID := range b.catIDs {
		if _, err := db.Exec(
			"INSERT INTO business_categories (business_id, category_id) VALUES ($1, $2)", b.id, catID); err != nil {
			t.Fatalf("insert business category: %v", err)
		}
	}
	for _, day := range b.hourDays {
		if _, err := db.Exec(
			"INSERT INTO business_working_hours (business_id, day, opening_time, closing_time) VALUES ($1, $2, '09:00', '22:00')",
			b.id, day); err != nil {
			t.Fatalf("insert working hours: %v", err)
		}
	}
	return b.id
}

// createCategory inserts a category fixture with cleanup.
func createCategory(t *testing.T, db *sql.DB, enName string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO categories (id, ar_name, en_name, slug)
		VALUES ($1, $2, $3, $4)
	`, id, "تصنيف "+enName, enName, "test-"+id)
	if err != nil {
		t.Fatalf("insert category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM business_categories WHERE category_id = $1", id)
		db.Exec("DELETE FROM categories WHERE id = $1", id)
	})
	return id
}

// createReview inserts an approved review fixture. Cleanup rides on the
// business fixture's review delete.
func createReview(t *testing.T, db *sql.DB, businessID, userID string, rating float64) string {
	t.Helper()

	id := "rev-" + uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO reviews (id, business_id, user_id, overall_rating, content, status)
		VALUES ($1, $2, $3, $4, 'test review', 'approved')
	`, id, businessID, userID, rating)
	if err != nil {
		t.Fatalf("insert review: %v", err)
	}
	return id
}
