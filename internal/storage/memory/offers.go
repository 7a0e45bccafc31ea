package memory

import (
	"context"
	"fmt"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/internal/storage"
)

func (s *Storage) Offers(_ context.Context) []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		out = append(out, o.Clone())
	}

	return out
}

func (s *Storage) OfferByID(_ context.Context, id string) (*models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	o := s.offers[i].Clone()
	return &o, nil
}

func (s *Storage) CreateOffer(_ context.Context, in models.OfferInput) (*models.Offer, error) {
	const op = "storage/memory/CreateOffer"

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(func(id string) bool { return s.indexOf(id) >= 0 })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	o := models.Offer{ID: id, Comments: []models.Comment{}}
	o.Apply(in)
	s.offers = append(s.offers, o)

	out := o.Clone()
	return &out, nil
}

func (s *Storage) UpdateOffer(_ context.Context, id string, in models.OfferInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return storage.ErrNotFound
	}

	s.offers[i].Apply(in)
	return nil
}

func (s *Storage) DeleteOffer(_ context.Context, id string) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	deleted := s.offers[i].Clone()
	s.offers = append(s.offers[:i], s.offers[i+1:]...)

	return &deleted, nil
}
