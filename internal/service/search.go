package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/pkg/log"
)

// Search — объявления, в заголовке которых query встречается как подстрока.
// Сравнение чувствительно к регистру.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой query;
//   - ничего не найдено — пустой срез без ошибки (транспорт отвечает 404).
func (s *Service) Search(ctx context.Context, query string) ([]models.Offer, error) {
	const op = "service/search/Search"
	lg := log.Op(ctx, op, "query", query)

	if query == "" {
		lg.Warn("invalid argument: empty query")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	found := matchTitle(s.storage.Offers(ctx), query)
	s.metrics.Searched(len(found))
	lg.Debug("search done", "found", len(found))

	return found, nil
}

func matchTitle(offers []models.Offer, query string) []models.Offer {
	out := make([]models.Offer, 0)
	for _, o := range offers {
		if strings.Contains(o.Title, query) {
			out = append(out, o)
		}
	}

	return out
}
