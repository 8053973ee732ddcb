// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// geo.go wraps the PostGIS geodesic primitives used by business queries.
// Distances are great-circle kilometers computed over the geography type.
package store

import "fmt"

// distanceKmExpr returns a SQL expression computing the distance in
// kilometers between locCol and the center point bound at the given
// longitude/latitude placeholders.
func distanceKmExpr(locCol, lngPh, latPh string) string {
	return fmt.Sprintf(
		"ST_Distance(%s::geography, ST_MakePoint(%s, %s)::geography) / 1000",
		locCol, lngPh, latPh)
}

// withinRadiusExpr returns a SQL predicate that is true when locCol lies
// within the radius (bound in meters) of the center point.
func withinRadiusExpr(locCol, lngPh, latPh, radiusMetersPh string) string {
	return fmt.Sprintf(
		"ST_DWithin(%s::geography, ST_MakePoint(%s, %s)::geography, %s)",
		locCol, lngPh, latPh, radiusMetersPh)
}
