// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"ba7besh/internal/models"
)

// intParam parses an optional integer query parameter, returning fallback
// when absent. A malformed value is a validation failure, not a default.
func intParam(q url.Values, name string, fallback int) (int, *models.ValidationError) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Message: "must be an integer"}
	}
	return v, nil
}

// floatParam parses an optional float query parameter.
func floatParam(q url.Values, name string, fallback float64) (float64, *models.ValidationError) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Message: "must be a number"}
	}
	return v, nil
}

// locationParam parses the optional lat/lng pair. Supplying only one half is
// a validation failure; supplying neither returns nil.
func locationParam(q url.Values) (*models.Location, *models.ValidationError) {
	rawLat := strings.TrimSpace(q.Get("lat"))
	rawLng := strings.TrimSpace(q.Get("lng"))
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, &models.ValidationError{Field: "lat", Message: "lat and lng must be provided together"}
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, &models.ValidationError{Field: "lat", Message: "must be a number"}
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, &models.ValidationError{Field: "lng", Message: "must be a number"}
	}
	if lat < -90 || lat > 90 {
		return nil, &models.ValidationError{Field: "lat", Message: "must be between -90 and 90"}
	}
	if lng < -180 || lng > 180 {
		return nil, &models.ValidationError{Field: "lng", Message: "must be between -180 and 180"}
	}
	return &models.Location{Latitude: lat, Longitude: lng}, nil
}

// tagsParam collects the repeatable tags parameter, dropping empty values.
func tagsParam(q url.Values) []string {
	var tags []string
	for _, t := range q["tags"] {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
