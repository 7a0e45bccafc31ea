package memory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pribylovaa/buy-and-sell/internal/models"
)

// ReadSeed читает JSON-массив объявлений из файла path.
func ReadSeed(path string) ([]models.Offer, error) {
	const op = "storage/memory/ReadSeed"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: read %q: %w", op, path, err)
	}

	var offers []models.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("%s: decode %q: %w", op, path, err)
	}

	for i := range offers {
		if offers[i].Comments == nil {
			offers[i].Comments = []models.Comment{}
		}
	}

	return offers, nil
}

// LoadSeed — как ReadSeed, но при любой ошибке пишет её в лог
// и возвращает пустой набор: сервис стартует без данных, а не падает.
func LoadSeed(log *slog.Logger, path string) []models.Offer {
	offers, err := ReadSeed(path)
	if err != nil {
		log.Error("seed_load_failed", slog.String("path", path), slog.String("err", err.Error()))
		return []models.Offer{}
	}

	offers, dups := uniqueSeed(offers)
	for _, d := range dups {
		log.Warn("seed_duplicate_id", slog.String("path", path), slog.String("id", d))
	}

	log.Info("seed_loaded", slog.String("path", path), slog.Int("offers", len(offers)))
	return offers
}

// uniqueSeed оставляет первое объявление с каждым ID и первый комментарий
// с каждым ID внутри объявления. Отброшенные ID возвращаются во втором значении
// (для комментариев — в виде "offerID/commentID"). Входной срез не меняется.
func uniqueSeed(offers []models.Offer) ([]models.Offer, []string) {
	var dups []string
	out := make([]models.Offer, 0, len(offers))
	seen := make(map[string]struct{}, len(offers))

	for _, o := range offers {
		if _, ok := seen[o.ID]; ok {
			dups = append(dups, o.ID)
			continue
		}
		seen[o.ID] = struct{}{}

		comments := make([]models.Comment, 0, len(o.Comments))
		seenComments := make(map[string]struct{}, len(o.Comments))
		for _, c := range o.Comments {
			if _, ok := seenComments[c.ID]; ok {
				dups = append(dups, o.ID+"/"+c.ID)
				continue
			}
			seenComments[c.ID] = struct{}{}
			comments = append(comments, c)
		}
		o.Comments = comments

		out = append(out, o)
	}

	return out, dups
}
