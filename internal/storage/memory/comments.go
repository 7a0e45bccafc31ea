package memory

import (
	"context"
	"fmt"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/internal/storage"
)

func (s *Storage) Comments(_ context.Context, offerID string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(offerID)
	if i < 0 {
		return []models.Comment{}
	}

	return append(make([]models.Comment, 0, len(s.offers[i].Comments)), s.offers[i].Comments...)
}

func (s *Storage) CreateComment(_ context.Context, offerID string, in models.CommentInput) (*models.Comment, error) {
	const op = "storage/memory/CreateComment"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(offerID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	offer := &s.offers[i]
	id, err := s.nextID(func(id string) bool { return commentIndex(offer.Comments, id) >= 0 })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := models.Comment{ID: id, Text: in.Text}
	offer.Comments = append(offer.Comments, c)

	return &c, nil
}

func (s *Storage) DeleteComment(_ context.Context, offerID, commentID string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(offerID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	offer := &s.offers[i]
	j := commentIndex(offer.Comments, commentID)
	if j < 0 {
		return nil, storage.ErrNotFound
	}

	deleted := offer.Comments[j]
	offer.Comments = append(offer.Comments[:j], offer.Comments[j+1:]...)

	return &deleted, nil
}

func commentIndex(comments []models.Comment, id string) int {
	for i := range comments {
		if comments[i].ID == id {
			return i
		}
	}

	return -1
}
