// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// Handler validation tests. Request validation runs before any database
// round trip, so these use stores with a nil connection: reaching the
// database would panic and fail the test loudly.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ba7besh/internal/store"
)

func testBusinesses() *Businesses {
	return NewBusinesses(store.NewBusinessStore(nil), store.NewReviewStore(nil))
}

func get400(t *testing.T, handler http.HandlerFunc, target string) errorResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("%s: status got %d, want 400", target, rr.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return body
}

func TestSearchRejectsBadPaging(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Search, "/businesses?page_size=0")
	if body.Field != "page_size" {
		t.Errorf("field: got %q, want page_size", body.Field)
	}

	body = get400(t, h.Search, "/businesses?page_size=abc")
	if body.Field != "page_size" {
		t.Errorf("malformed: field got %q, want page_size", body.Field)
	}

	body = get400(t, h.Search, "/businesses?page_number=0")
	if body.Field != "page_number" {
		t.Errorf("field: got %q, want page_number", body.Field)
	}
}

func TestSearchRejectsHalfLocation(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Search, "/businesses?lat=33.51")
	if body.Field != "lat" {
		t.Errorf("field: got %q, want lat", body.Field)
	}
}

func TestSearchRejectsCenterWithoutRadius(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Search, "/businesses?lat=33.51&lng=36.29")
	if body.Field != "radius_km" {
		t.Errorf("field: got %q, want radius_km", body.Field)
	}
}

func TestSearchRejectsRadiusWithoutCenter(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Search, "/businesses?radius_km=2")
	if body.Field != "radius_km" {
		t.Errorf("field: got %q, want radius_km", body.Field)
	}
}

func TestSearchRejectsBadCategoryID(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Search, "/businesses?category_id=not-a-uuid")
	if body.Field != "category_id" {
		t.Errorf("field: got %q, want category_id", body.Field)
	}
}

func TestTopRatedRejectsBadRating(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.TopRated, "/businesses/top-rated?min_rating=6")
	if body.Field != "minimum_rating" {
		t.Errorf("field: got %q, want minimum_rating", body.Field)
	}

	body = get400(t, h.TopRated, "/businesses/top-rated?min_rating=best")
	if body.Field != "min_rating" {
		t.Errorf("malformed: field got %q, want min_rating", body.Field)
	}

	body = get400(t, h.TopRated, "/businesses/top-rated?limit=0")
	if body.Field != "limit" {
		t.Errorf("field: got %q, want limit", body.Field)
	}
}

func TestRecommendationsRequireUser(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Recommendations, "/businesses/recommendations")
	if body.Field != "user_id" {
		t.Errorf("field: got %q, want user_id", body.Field)
	}

	body = get400(t, h.Recommendations, "/businesses/recommendations?user_id=u1&lat=91&lng=0")
	if body.Field != "lat" {
		t.Errorf("field: got %q, want lat", body.Field)
	}
}

func TestReviewsRejectBadPaging(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.Reviews, "/businesses/b1/reviews?page_size=200")
	if body.Field != "page_size" {
		t.Errorf("field: got %q, want page_size", body.Field)
	}
}

func TestRecentReviewsRejectBadLimit(t *testing.T) {
	h := testBusinesses()

	body := get400(t, h.RecentReviews, "/reviews/recent?limit=9000")
	if body.Field != "limit" {
		t.Errorf("field: got %q, want limit", body.Field)
	}
}
