// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

// predicate.go builds the dynamic WHERE clause for business queries. Filters
// contribute (clause, bound value) pairs composed conjunctively; user input
// only ever travels through bound parameters, never into the SQL text.
package store

import (
	"fmt"
	"strings"
)

// predicate accumulates conjunctive filter clauses and their positionally
// bound arguments for a single query. The zero clause set already excludes
// soft-deleted businesses.
type predicate struct {
	clauses []string
	args    []any
}

func newPredicate() *predicate {
	return &predicate{clauses: []string{"b.is_deleted = FALSE"}}
}

// bind registers a query argument and returns its $n placeholder. The
// placeholder may be referenced any number of times in later fragments.
func (p *predicate) bind(v any) string {
	p.args = append(p.args, v)
	return fmt.Sprintf("$%d", len(p.args))
}

// where appends a clause. The clause must reference arguments only through
// placeholders previously returned by bind.
func (p *predicate) where(clause string) {
	p.clauses = append(p.clauses, clause)
}

// clause returns the full conjunctive WHERE body.
func (p *predicate) clause() string {
	return strings.Join(p.clauses, " AND ")
}

// textFilter matches the search term case-insensitively against either
// bilingual name field.
func (p *predicate) textFilter(term string) {
	ph := p.bind("%" + term + "%")
	p.where(fmt.Sprintf("(b.ar_name ILIKE %s OR b.en_name ILIKE %s)", ph, ph))
}

// categoryFilter keeps businesses linked to the category through a
// non-deleted join row.
func (p *predicate) categoryFilter(categoryID string) {
	p.where(fmt.Sprintf(
		"EXISTS (SELECT 1 FROM business_categories bc WHERE bc.business_id = b.id AND bc.category_id = %s AND bc.is_deleted = FALSE)",
		p.bind(categoryID)))
}

// tagFilter keeps businesses carrying at least one of the requested tags.
func (p *predicate) tagFilter(tags []string) {
	p.where(fmt.Sprintf(
		"EXISTS (SELECT 1 FROM business_tags bt WHERE bt.business_id = b.id AND bt.tag = ANY(%s) AND bt.is_deleted = FALSE)",
		p.bind(tags)))
}
