package service

import (
	"context"

	"github.com/pribylovaa/buy-and-sell/internal/models"
)

// Categories — различные названия категорий по всем объявлениям,
// в порядке первого появления. Собственного состояния нет.
func (s *Service) Categories(ctx context.Context) []string {
	return distinctCategories(s.storage.Offers(ctx))
}

func distinctCategories(offers []models.Offer) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, o := range offers {
		for _, c := range o.Category {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}
