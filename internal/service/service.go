// service содержит бизнес-логику сервиса объявлений:
// CRUD объявлений и комментариев, индекс категорий, поиск и проверку существования.
package service

import (
	"errors"

	"github.com/pribylovaa/buy-and-sell/internal/metrics"
	"github.com/pribylovaa/buy-and-sell/internal/storage"
	"github.com/pribylovaa/buy-and-sell/internal/validation"
)

var (
	// ErrNotFound — объявление или комментарий отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка (хранилище/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика объявлений.
type Service struct {
	storage   storage.Storage
	validator *validation.Validator
	metrics   *metrics.Metrics
}

// New создает новый экземпляр Service. m может быть nil.
func New(st storage.Storage, v *validation.Validator, m *metrics.Metrics) *Service {
	return &Service{
		storage:   st,
		validator: v,
		metrics:   m,
	}
}
