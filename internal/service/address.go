// Package service holds the application services between the repositories
// and the TUI.
package service

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/zikim/zikim/internal/database/repository"
)

// AddressService searches the address catalog.
type AddressService struct {
	Addresses *repository.AddressRepo
	Log       *zap.Logger
}

// Search returns catalog entries whose road address contains query as a
// case-sensitive substring; an empty query returns the whole catalog.
// Matches are ordered by edit distance to the query so the closest road
// lists first, with the catalog order breaking ties.
func (s *AddressService) Search(ctx context.Context, query string) ([]repository.Address, error) {
	all, err := s.Addresses.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return all, nil
	}

	var matches []repository.Address
	for _, a := range all {
		if strings.Contains(a.RoadAddress, q) {
			matches = append(matches, a)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return levenshtein.ComputeDistance(q, matches[i].RoadAddress) <
			levenshtein.ComputeDistance(q, matches[j].RoadAddress)
	})
	if s.Log != nil {
		s.Log.Debug("address search", zap.String("query", q), zap.Int("matches", len(matches)))
	}
	return matches, nil
}

// Lookup returns the catalog entry selected earlier, or nil if the road is
// not in the catalog.
func (s *AddressService) Lookup(ctx context.Context, road string) (*repository.Address, error) {
	if road == "" {
		return nil, nil
	}
	return s.Addresses.GetByRoad(ctx, road)
}
