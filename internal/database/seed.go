package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed populates the database with initial development data: a small
// category tree and a handful of Damascus businesses with categories, tags,
// working hours, and enough approved reviews to light up the rating-based
// rankings. No-op if businesses already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM businesses").Scan(&count); err != nil {
		return fmt.Errorf("seed check businesses: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	restaurants := uuid.NewString()
	cafes := uuid.NewString()
	sweets := uuid.NewString()
	shawarma := uuid.NewString()

	categories := []struct {
		id, arName, enName, slug string
		parentID                 *string
	}{
		{restaurants, "مطاعم", "Restaurants", "restaurants", nil},
		{cafes, "مقاهي", "Cafes", "cafes", nil},
		{sweets, "حلويات", "Sweets", "sweets", nil},
		{shawarma, "شاورما", "Shawarma", "shawarma", &restaurants},
	}
	for _, c := range categories {
		if _, err := tx.Exec(`
			INSERT INTO categories (id, ar_name, en_name, slug, parent_id)
			VALUES ($1, $2, $3, $4, $5)
		`, c.id, c.arName, c.enName, c.slug, c.parentID); err != nil {
			return fmt.Errorf("seed insert category: %w", err)
		}
	}

	businesses := []struct {
		id, arName, enName, city, typ string
		lat, lng                      float64
		categoryIDs                   []string
		tags                          []string
	}{
		{uuid.NewString(), "مطعم الشام القديم", "Old Damascus Restaurant", "Damascus", "restaurant",
			33.5115, 36.3065, []string{restaurants}, []string{"family", "traditional"}},
		{uuid.NewString(), "شاورما أبو العز", "Abu Alezz Shawarma", "Damascus", "restaurant",
			33.5180, 36.2937, []string{restaurants, shawarma}, []string{"shawarma", "takeaway"}},
		{uuid.NewString(), "مقهى الروضة", "Al-Rawda Cafe", "Damascus", "cafe",
			33.5163, 36.2902, []string{cafes}, []string{"coffee", "backgammon"}},
		{uuid.NewString(), "حلويات بكداش", "Bakdash Sweets", "Damascus", "sweets",
			33.5125, 36.3019, []string{sweets}, []string{"booza", "dessert"}},
	}
	for _, b := range businesses {
		if _, err := tx.Exec(`
			INSERT INTO businesses (id, ar_name, en_name, location, city, type)
			VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6, $7)
		`, b.id, b.arName, b.enName, b.lng, b.lat, b.city, b.typ); err != nil {
			return fmt.Errorf("seed insert business: %w", err)
		}
		for _, catID := range b.categoryIDs {
			if _, err := tx.Exec(`
				INSERT INTO business_categories (business_id, category_id) VALUES ($1, $2)
			`, b.id, catID); err != nil {
				return fmt.Errorf("seed insert business category: %w", err)
			}
		}
		for _, tag := range b.tags {
			if _, err := tx.Exec(`
				INSERT INTO business_tags (business_id, tag) VALUES ($1, $2)
			`, b.id, tag); err != nil {
				return fmt.Errorf("seed insert business tag: %w", err)
			}
		}
		// Open Saturday through Thursday; Friday opens late.
		for day := 0; day <= 6; day++ {
			opening := "10:00"
			if day == 5 {
				opening = "14:00"
			}
			if _, err := tx.Exec(`
				INSERT INTO business_working_hours (business_id, day, opening_time, closing_time)
				VALUES ($1, $2, $3, $4)
			`, b.id, day, opening, "23:00"); err != nil {
				return fmt.Errorf("seed insert working hours: %w", err)
			}
		}
	}

	// Approved reviews from three development users so top-rated and
	// recommendations return something out of the box.
	reviewers := []string{"dev-user-1", "dev-user-2", "dev-user-3"}
	ratings := [][]float64{
		{5, 4.5, 4},   // Old Damascus Restaurant
		{4.5, 4, 4.5}, // Abu Alezz Shawarma
		{4, 3.5, 4},   // Al-Rawda Cafe
		{5, 5, 4.5},   // Bakdash Sweets
	}
	for i, b := range businesses {
		for j, userID := range reviewers {
			// Leave Bakdash unreviewed by dev-user-1 so that user's
			// recommendations have a candidate.
			if i == 3 && j == 0 {
				continue
			}
			if _, err := tx.Exec(`
				INSERT INTO reviews (id, business_id, user_id, overall_rating, content, status)
				VALUES ($1, $2, $3, $4, $5, 'approved')
			`, uuid.NewString(), b.id, userID, ratings[i][j], "seeded review"); err != nil {
				return fmt.Errorf("seed insert review: %w", err)
			}
		}
	}

	// Keep Bakdash above the three-review ranking gate despite the skip.
	if _, err := tx.Exec(`
		INSERT INTO reviews (id, business_id, user_id, overall_rating, content, status)
		VALUES ($1, $2, 'dev-user-4', 5, 'seeded review', 'approved')
	`, uuid.NewString(), businesses[3].id); err != nil {
		return fmt.Errorf("seed insert review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with development data",
		"businesses", len(businesses),
		"categories", len(categories),
	)
	return nil
}
