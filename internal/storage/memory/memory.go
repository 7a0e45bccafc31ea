// Package memory — хранилище объявлений в памяти процесса.
// Данные живут до перезапуска и обратно на диск не пишутся.
package memory

import (
	"sync"

	"github.com/pribylovaa/buy-and-sell/internal/idgen"
	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/internal/storage"
)

// maxIDAttempts — сколько раз пробуем сгенерировать свободный ID.
const maxIDAttempts = 8

var _ storage.Storage = (*Storage)(nil)

// Storage хранит упорядоченный срез объявлений под RWMutex:
// каждая операция выполняется целиком, изменения не перемежаются.
type Storage struct {
	mu     sync.RWMutex
	offers []models.Offer
	ids    idgen.Generator
}

// New создаёт хранилище с начальным набором объявлений.
// seed копируется: внешние изменения среза не влияют на хранилище.
// Повторы ID в seed отбрасываются, остаётся первая запись.
func New(ids idgen.Generator, seed []models.Offer) *Storage {
	seed, _ = uniqueSeed(seed)
	offers := make([]models.Offer, 0, len(seed))
	for _, o := range seed {
		offers = append(offers, o.Clone())
	}

	return &Storage{
		offers: offers,
		ids:    ids,
	}
}

// indexOf ищет объявление по ID. Вызывать под блокировкой.
func (s *Storage) indexOf(id string) int {
	for i := range s.offers {
		if s.offers[i].ID == id {
			return i
		}
	}

	return -1
}

// nextID выдаёт ID, которого нет среди taken. Вызывать под блокировкой.
func (s *Storage) nextID(taken func(id string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.Next()
		if !taken(id) {
			return id, nil
		}
	}

	return "", storage.ErrIDExhausted
}
