// Package generator — генерация тестовых объявлений для seed-файла (mocks.json).
package generator

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/pribylovaa/buy-and-sell/internal/idgen"
	"github.com/pribylovaa/buy-and-sell/internal/models"
)

// Ограничения генерации.
const (
	DefaultCount = 1

	descriptionSentences = 4
	minPicture           = 1
	maxPicture           = 16
	minSum               = 1000
	maxSum               = 100000
	minComments          = 1
	maxComments          = 4
	minCommentLines      = 1
	maxCommentLines      = 3

	maxIDAttempts = 8
)

// Файлы словаря в каталоге данных.
const (
	TitlesFile     = "titles.txt"
	SentencesFile  = "sentences.txt"
	CategoriesFile = "categories.txt"
	CommentsFile   = "comments.txt"
)

var (
	// ErrEmptyDictionary — в одном из словарей нет ни одной строки.
	ErrEmptyDictionary = errors.New("empty dictionary")
	// ErrIDExhausted — не удалось выдать уникальный ID.
	ErrIDExhausted = errors.New("id generator exhausted")
)

var offerTypes = []string{models.OfferTypeOffer, models.OfferTypeSale}

// Dictionary — исходные строки для генерации.
type Dictionary struct {
	Titles     []string
	Sentences  []string
	Categories []string
	Comments   []string
}

// LoadDictionary читает четыре словаря из dir. Пустые строки пропускаются.
func LoadDictionary(dir string) (Dictionary, error) {
	const op = "generator/LoadDictionary"
	var d Dictionary

	for _, f := range []struct {
		name string
		dst  *[]string
	}{
		{TitlesFile, &d.Titles},
		{SentencesFile, &d.Sentences},
		{CategoriesFile, &d.Categories},
		{CommentsFile, &d.Comments},
	} {
		lines, err := readLines(filepath.Join(dir, f.name))
		if err != nil {
			return Dictionary{}, fmt.Errorf("%s: %w", op, err)
		}
		*f.dst = lines
	}

	return d, nil
}

// validate — без заголовков, категорий и комментариев сгенерировать нечего.
// Пустые предложения допустимы: описание будет пустым.
func (d Dictionary) validate() error {
	switch {
	case len(d.Titles) == 0:
		return fmt.Errorf("%w: %s", ErrEmptyDictionary, TitlesFile)
	case len(d.Categories) == 0:
		return fmt.Errorf("%w: %s", ErrEmptyDictionary, CategoriesFile)
	case len(d.Comments) == 0:
		return fmt.Errorf("%w: %s", ErrEmptyDictionary, CommentsFile)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return out, nil
}

// Generator собирает объявления из словаря.
type Generator struct {
	ids idgen.Generator
	rnd *rand.Rand
}

// New создаёт генератор. rnd == nil — общий источник math/rand/v2.
func New(ids idgen.Generator, rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{ids: ids, rnd: rnd}
}

// Offers генерирует count объявлений (count <= 0 -> DefaultCount).
func (g *Generator) Offers(d Dictionary, count int) ([]models.Offer, error) {
	const op = "generator/Offers"

	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count <= 0 {
		count = DefaultCount
	}

	offerIDs := make(map[string]struct{}, count)
	out := make([]models.Offer, 0, count)

	for range count {
		id, err := g.uniqueID(offerIDs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		comments, err := g.comments(d.Comments)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		out = append(out, models.Offer{
			ID:          id,
			Category:    models.Categories{pick(g.rnd, d.Categories)},
			Description: strings.Join(g.sample(d.Sentences, descriptionSentences), " "),
			Picture:     fmt.Sprintf("item%02d.jpg", g.between(minPicture, maxPicture)),
			Title:       pick(g.rnd, d.Titles),
			Type:        pick(g.rnd, offerTypes),
			Sum:         g.between(minSum, maxSum),
			Comments:    comments,
		})
	}

	return out, nil
}

func (g *Generator) comments(lines []string) ([]models.Comment, error) {
	n := g.between(minComments, maxComments)
	seen := make(map[string]struct{}, n)
	out := make([]models.Comment, 0, n)

	for range n {
		id, err := g.uniqueID(seen)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Comment{
			ID:   id,
			Text: strings.Join(g.sample(lines, g.between(minCommentLines, maxCommentLines)), " "),
		})
	}

	return out, nil
}

// uniqueID выдаёт ID, которого ещё нет в seen, и запоминает его.
func (g *Generator) uniqueID(seen map[string]struct{}) (string, error) {
	for range maxIDAttempts {
		id := g.ids.Next()
		if _, taken := seen[id]; !taken {
			seen[id] = struct{}{}
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// sample — до n различных строк src в случайном порядке; src не меняется.
func (g *Generator) sample(src []string, n int) []string {
	shuffled := append([]string(nil), src...)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(n, len(shuffled))]
}

// between — случайное целое в [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

func pick(rnd *rand.Rand, src []string) string {
	return src[rnd.IntN(len(src))]
}

// WriteFile сохраняет объявления в формате seed-файла.
func WriteFile(path string, offers []models.Offer) error {
	const op = "generator/WriteFile"

	raw, err := json.MarshalIndent(offers, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("%s: write: %w", op, err)
	}

	return nil
}
