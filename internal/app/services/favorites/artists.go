package favorites

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// artistSeparators splits collaboration credits into individual names:
// commas, ampersands and the usual "feat." / "ft." / "with" markers.
var artistSeparators = regexp.MustCompile(`[,&]|\sfeat\.?\s|\sft\.?\s|\swith\s`)

// Artists returns every distinct artist credited on the user's favorites,
// sorted case-insensitively. Tracks credit collaborations as one joined
// string, so the credits are split back into individual names first.
func (s *Service) Artists(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "FavoritesService.Artists")
	defer span.End()

	all, err := s.listAll(ctx, "all")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	artists := make([]string, 0)
	for _, track := range all {
		for _, name := range artistSeparators.Split(track.Artist, -1) {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			artists = append(artists, name)
		}
	}

	sort.Slice(artists, func(i, j int) bool {
		return strings.ToLower(artists[i]) < strings.ToLower(artists[j])
	})

	return artists, nil
}
