package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/internal/storage"
	"github.com/pribylovaa/buy-and-sell/pkg/log"
)

// Offers возвращает все объявления в порядке добавления.
func (s *Service) Offers(ctx context.Context) []models.Offer {
	return s.storage.Offers(ctx)
}

// OfferByID — получить объявление по ID.
//
// Поведение/ошибки:
//   - ErrNotFound — если объявления нет.
func (s *Service) OfferByID(ctx context.Context, id string) (*models.Offer, error) {
	const op = "service/offers/OfferByID"
	lg := log.Op(ctx, op, "offer_id", id)

	offer, err := s.storage.OfferByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("offer not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		lg.Error("storage error on OfferByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return offer, nil
}

// CreateOffer — создание объявления.
//
// Валидация: все поля OfferInput обязательны, sum >= 0 (первый отказ -> ErrInvalidArgument).
//
// Поведение/ошибки:
//   - ErrInvalidArgument — вход не прошёл проверку, хранилище не трогается;
//   - ErrInternal — не удалось выдать ID.
func (s *Service) CreateOffer(ctx context.Context, in models.OfferInput) (*models.Offer, error) {
	const op = "service/offers/CreateOffer"
	lg := log.Op(ctx, op)

	if err := s.validator.Offer(in); err != nil {
		lg.Warn("invalid argument", "reason", err.Error())
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	offer, err := s.storage.CreateOffer(ctx, in)
	if err != nil {
		lg.Error("storage error on CreateOffer", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.metrics.OfferCreated()
	lg.Info("offer created", "offer_id", offer.ID)

	return offer, nil
}

// UpdateOffer — полная замена изменяемых полей объявления.
//
// Порядок: сначала проверка входа, затем поиск по ID.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — вход не прошёл проверку;
//   - ErrNotFound — объявления нет, хранилище не меняется.
func (s *Service) UpdateOffer(ctx context.Context, id string, in models.OfferInput) error {
	const op = "service/offers/UpdateOffer"
	lg := log.Op(ctx, op, "offer_id", id)

	if err := s.validator.Offer(in); err != nil {
		lg.Warn("invalid argument", "reason", err.Error())
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	if err := s.storage.UpdateOffer(ctx, strings.TrimSpace(id), in); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("offer not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		lg.Error("storage error on UpdateOffer", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// DeleteOffer — удаление объявления вместе с его комментариями.
//
// Поведение/ошибки:
//   - ErrNotFound — объявления нет.
func (s *Service) DeleteOffer(ctx context.Context, id string) (*models.Offer, error) {
	const op = "service/offers/DeleteOffer"
	lg := log.Op(ctx, op, "offer_id", id)

	offer, err := s.storage.DeleteOffer(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("offer not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		lg.Error("storage error on DeleteOffer", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.metrics.OfferDeleted()
	lg.Info("offer deleted", "comments", len(offer.Comments))

	return offer, nil
}
