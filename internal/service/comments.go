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

// Comments возвращает комментарии объявления, найденного ResolveOffer.
func (s *Service) Comments(ctx context.Context, offer *models.Offer) []models.Comment {
	return s.storage.Comments(ctx, offer.ID)
}

// ValidateComment — проверка входа комментария без обращения к хранилищу.
func (s *Service) ValidateComment(ctx context.Context, in models.CommentInput) error {
	const op = "service/comments/ValidateComment"

	if err := s.validator.Comment(in); err != nil {
		log.Op(ctx, op).Warn("invalid argument", "reason", err.Error())
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	return nil
}

// CreateComment — добавление комментария к объявлению, найденному ResolveOffer.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой text;
//   - ErrNotFound — объявление удалили между проверкой и записью;
//   - ErrInternal — прочие ошибки хранилища.
func (s *Service) CreateComment(ctx context.Context, offer *models.Offer, in models.CommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"
	lg := log.Op(ctx, op, "offer_id", offer.ID)

	if err := s.ValidateComment(ctx, in); err != nil {
		return nil, err
	}

	comment, err := s.storage.CreateComment(ctx, offer.ID, in)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("offer not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		lg.Error("storage error on CreateComment", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.metrics.CommentCreated()
	lg.Info("comment created", "comment_id", comment.ID)

	return comment, nil
}

// DeleteComment — удаление комментария объявления.
//
// Поведение/ошибки:
//   - ErrNotFound — нет объявления или комментария.
func (s *Service) DeleteComment(ctx context.Context, offer *models.Offer, commentID string) (*models.Comment, error) {
	const op = "service/comments/DeleteComment"
	commentID = strings.TrimSpace(commentID)
	lg := log.Op(ctx, op, "offer_id", offer.ID, "comment_id", commentID)

	comment, err := s.storage.DeleteComment(ctx, offer.ID, commentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		lg.Error("storage error on DeleteComment", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.metrics.CommentDeleted()

	return comment, nil
}
