package sqlite

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vowsync/vowsync/internal/models"
)

// SearchVendors matches the seeded directory against a free-text query.
// Every query term must appear in the vendor's name or keywords; a
// non-empty location narrows results to that location. Results come back
// best-rated first.
func (s *SQLiteStore) SearchVendors(ctx context.Context, query, location string) ([]models.Vendor, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, image, number_of_reviews, location, rating, keywords FROM vendors")
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	terms := strings.Fields(strings.ToLower(query))
	wantLocation := strings.ToLower(strings.TrimSpace(location))

	matches := make([]models.Vendor, 0)
	for rows.Next() {
		var (
			v        models.Vendor
			keywords string
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Image, &v.NumberOfReviews, &v.Location, &v.Rating, &keywords); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		if wantLocation != "" && strings.ToLower(v.Location) != wantLocation {
			continue
		}
		haystack := strings.ToLower(v.Name) + " " + strings.ToLower(keywords)
		if matchesTerms(haystack, terms) {
			matches = append(matches, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Rating > matches[j].Rating
	})
	return matches, nil
}

// matchesTerms reports whether at least one term occurs in the haystack.
// Commas in seeded phrases ("wedding dress, wedding atelier") are treated
// as separators.
func matchesTerms(haystack string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, term := range terms {
		term = strings.Trim(term, ",")
		if term == "" {
			continue
		}
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
