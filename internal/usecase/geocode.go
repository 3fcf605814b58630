package usecase

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"github.com/travelmap/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxSuggestions caps the interactive suggestion list.
	maxSuggestions = 10

	// minQueryLength gates suggestion recomputes; anything shorter clears
	// the list instead.
	minQueryLength = 2
)

// GeocodeUseCase resolves free text or a map click to a usable place name
// and coordinate, preferring the bundled directory before the external
// provider.
type GeocodeUseCase struct {
	directory repository.DirectoryRepository
	geocoder  repository.Geocoder
	activity  *ActivityTracker
	logger    *zap.Logger

	stripDiacritics transform.Transformer
}

func NewGeocodeUseCase(
	directory repository.DirectoryRepository,
	geocoder repository.Geocoder,
	activity *ActivityTracker,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		directory:       directory,
		geocoder:        geocoder,
		activity:        activity,
		logger:          logger,
		stripDiacritics: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Normalize case-folds the text and strips diacritics, so "Nátal" and
// "NATAL" both match "natal".
func (uc *GeocodeUseCase) Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	stripped, _, err := transform.String(uc.stripDiacritics, lowered)
	if err != nil {
		// Malformed input: fall back to plain case-folding.
		return lowered
	}
	return stripped
}

// Suggest returns up to 10 directory entries matching the query, in
// directory order. Queries shorter than the length gate clear the list
// immediately; no timer debounce is needed on top of that.
func (uc *GeocodeUseCase) Suggest(query string) []domain.DirectoryEntry {
	q := uc.Normalize(query)
	if utf8.RuneCountInString(q) < minQueryLength {
		return nil
	}

	var matches []domain.DirectoryEntry
	for _, entry := range uc.directory.All() {
		if uc.matchesEntry(entry, q) {
			matches = append(matches, entry)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// matchesEntry checks substring containment in either direction against
// the normalized name, country and state.
func (uc *GeocodeUseCase) matchesEntry(entry domain.DirectoryEntry, normalizedQuery string) bool {
	for _, field := range []string{entry.Name, entry.Country, entry.State} {
		if field == "" {
			continue
		}
		f := uc.Normalize(field)
		if strings.Contains(f, normalizedQuery) || strings.Contains(normalizedQuery, f) {
			return true
		}
	}
	return false
}

// Search resolves a query directly: the first exact normalized-name
// directory match wins, otherwise the external provider's first result.
// Provider failures are swallowed into the same not-found signal - the
// caller gets a message, never a crash.
func (uc *GeocodeUseCase) Search(ctx context.Context, query string) (*domain.ForwardResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	if entry, ok := uc.Lookup(query); ok {
		return &domain.ForwardResult{
			Name:        entry.Name,
			Coordinates: entry.Coordinates,
		}, nil
	}

	uc.activity.Begin(ActivityGeocode)
	defer uc.activity.End()

	result, err := uc.geocoder.Forward(ctx, query)
	if err != nil {
		uc.logger.Warn("External forward geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, apperrors.ErrLocationNotFound
	}
	if result == nil {
		return nil, apperrors.ErrLocationNotFound
	}
	return result, nil
}

// Lookup finds the directory entry whose normalized name equals the
// normalized query.
func (uc *GeocodeUseCase) Lookup(name string) (domain.DirectoryEntry, bool) {
	q := uc.Normalize(name)
	if q == "" {
		return domain.DirectoryEntry{}, false
	}
	for _, entry := range uc.directory.All() {
		if uc.Normalize(entry.Name) == q {
			return entry, true
		}
	}
	return domain.DirectoryEntry{}, false
}

// ResolveClick turns a map click into a human place label via reverse
// lookup. A provider failure is logged and returns an empty label - the
// caller keeps whatever name the user already typed.
func (uc *GeocodeUseCase) ResolveClick(ctx context.Context, lat, lon float64) (string, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return "", apperrors.ErrInvalidCoordinates
	}

	uc.activity.Begin(ActivityGeocode)
	defer uc.activity.End()

	address, err := uc.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		uc.logger.Warn("Reverse geocoding failed, keeping existing name",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return "", nil
	}

	return address.Label(), nil
}

// SuggestDescription proposes a template sentence keyed by the entry's
// category. It only fires on an empty description - user text is never
// overwritten.
func (uc *GeocodeUseCase) SuggestDescription(entry domain.DirectoryEntry, current string) string {
	if strings.TrimSpace(current) != "" {
		return current
	}

	switch entry.Category {
	case domain.CategoryBeach:
		return "Beautiful beaches and warm coastal waters in " + entry.Name + "."
	case domain.CategoryMountain:
		return "Mountain scenery and fresh highland air in " + entry.Name + "."
	case domain.CategoryHistoric:
		return "Historic streets and centuries of stories in " + entry.Name + "."
	case domain.CategoryCultural:
		return "A rich cultural scene to explore in " + entry.Name + "."
	case domain.CategoryNature:
		return "Stunning natural landscapes around " + entry.Name + "."
	case domain.CategoryCity:
		return "A vibrant city break in " + entry.Name + "."
	default:
		return "A destination worth the trip: " + entry.Name + "."
	}
}
