// Package storage определяет контракты хранилища объявлений и комментариев.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/buy-and-sell/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrIDExhausted — не удалось подобрать свободный идентификатор.
	ErrIDExhausted = errors.New("id space exhausted")
)

// OfferStorage описывает операции над объявлениями.
type OfferStorage interface {
	// Offers возвращает все объявления в порядке добавления.
	Offers(ctx context.Context) []models.Offer
	// OfferByID возвращает объявление по идентификатору.
	// Если запись не найдена — ErrNotFound.
	OfferByID(ctx context.Context, id string) (*models.Offer, error)
	// CreateOffer выдаёт новый ID, инициализирует пустой список комментариев
	// и добавляет объявление в конец. Вход должен быть уже провалидирован.
	CreateOffer(ctx context.Context, in models.OfferInput) (*models.Offer, error)
	// UpdateOffer заменяет изменяемые поля, сохраняя ID и комментарии.
	// Если запись не найдена — ErrNotFound, хранилище не меняется.
	UpdateOffer(ctx context.Context, id string, in models.OfferInput) error
	// DeleteOffer удаляет объявление вместе с комментариями и возвращает его.
	// Если запись не найдена — ErrNotFound.
	DeleteOffer(ctx context.Context, id string) (*models.Offer, error)
}

// CommentStorage описывает операции над комментариями в пределах объявления.
type CommentStorage interface {
	// Comments возвращает комментарии объявления; пустой срез, если объявления нет.
	Comments(ctx context.Context, offerID string) []models.Comment
	// CreateComment добавляет комментарий в конец списка объявления.
	// Если объявление пропало — ErrNotFound.
	CreateComment(ctx context.Context, offerID string, in models.CommentInput) (*models.Comment, error)
	// DeleteComment удаляет комментарий и возвращает его.
	// Если нет объявления или комментария — ErrNotFound.
	DeleteComment(ctx context.Context, offerID, commentID string) (*models.Comment, error)
}

// Storage — полный контракт хранилища сервиса.
type Storage interface {
	OfferStorage
	CommentStorage
}
