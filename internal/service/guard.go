package service

import (
	"context"

	"github.com/pribylovaa/buy-and-sell/internal/models"
)

// ResolveOffer — проверка существования объявления перед операциями над комментариями.
// Найденное объявление возвращается вызывающему и передаётся дальше явно,
// чтобы следующий шаг не искал его повторно.
//
// Поведение/ошибки:
//   - ErrNotFound — объявления нет, дальнейшие шаги выполняться не должны.
func (s *Service) ResolveOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	return s.OfferByID(ctx, offerID)
}
