package memory

// Тесты in-memory хранилища (offers.go, comments.go, seed.go).
//
//  Проверяем:
//  - CRUD объявлений и каскадное удаление комментариев;
//  - изоляцию: наружу отдаются копии;
//  - повторную генерацию ID при коллизии;
//  - загрузку начальных данных и откат на пустой набор при ошибке.

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pribylovaa/buy-and-sell/internal/idgen"
	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/internal/storage"
	"github.com/stretchr/testify/require"
)

// seedOffers — копия фикстуры из e2e-сценариев API.
func seedOffers() []models.Offer {
	return []models.Offer{
		{
			ID:          "iXtuEN",
			Category:    models.Categories{"Книги"},
			Description: "Товар в отличном состоянии.",
			Picture:     "item04.jpg",
			Title:       "Куплю пуделя",
			Type:        "sale",
			Sum:         46328,
			Comments:    []models.Comment{{ID: "rS8fpJ", Text: "Неплохо, но дорого. Вы что?! В магазине дешевле."}},
		},
		{
			ID:          "UGpXXK",
			Category:    models.Categories{"Книги"},
			Description: "Даю недельную гарантию.",
			Picture:     "item01.jpg",
			Title:       "Куплю пуделя",
			Type:        "offer",
			Sum:         83167,
			Comments:    []models.Comment{{ID: "V-m9ib", Text: "Совсем немного... А где блок питания?"}},
		},
		{
			ID:          "jbd9zq",
			Category:    models.Categories{"Музыка"},
			Description: "Продам детские ботиночки, неношенные.",
			Picture:     "item15.jpg",
			Title:       "Куплю породистого кота",
			Type:        "offer",
			Sum:         81446,
			Comments: []models.Comment{
				{ID: "Ibc7xC", Text: "А где блок питания?"},
				{ID: "blp4zI", Text: "Оплата наличными или перевод на карту?"},
				{ID: "a-Zi4P", Text: "Почему в таком ужасном состоянии?"},
			},
		},
	}
}

func validInput() models.OfferInput {
	sum := 100
	return models.OfferInput{
		Category:    models.Categories{"Котики"},
		Title:       "Дам погладить котика",
		Description: "Дам погладить котика. Дорого. Не гербалайф",
		Picture:     "cat.jpg",
		Type:        "OFFER",
		Sum:         &sum,
	}
}

// seqIDs — детерминированный генератор: отдаёт ids по очереди.
func seqIDs(ids ...string) idgen.Generator {
	i := 0
	return idgen.Func(func() string {
		id := ids[i%len(ids)]
		i++
		return id
	})
}

func newStorage(t *testing.T) *Storage {
	t.Helper()
	return New(idgen.MustNew(), seedOffers())
}

func TestStorage_Offers_InsertionOrder(t *testing.T) {
	t.Parallel()
	s := newStorage(t)

	got := s.Offers(context.Background())
	require.Len(t, got, 3)
	require.Equal(t, "iXtuEN", got[0].ID)
	require.Equal(t, "UGpXXK", got[1].ID)
	require.Equal(t, "jbd9zq", got[2].ID)
}

func TestStorage_CreateOffer_UniqueIDs(t *testing.T) {
	t.Parallel()
	s := New(idgen.MustNew(), nil)
	ctx := context.Background()

	const n = 50
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		o, err := s.CreateOffer(ctx, validInput())
		require.NoError(t, err)
		require.Len(t, o.ID, idgen.Length)
		seen[o.ID] = struct{}{}
	}

	require.Len(t, s.Offers(ctx), n)
	require.Len(t, seen, n)
}

func TestStorage_CreateOffer_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()
	in := validInput()

	created, err := s.CreateOffer(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, created.Comments)
	require.Empty(t, created.Comments)

	got, err := s.OfferByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, in.Category, got.Category)
	require.Equal(t, in.Title, got.Title)
	require.Equal(t, in.Description, got.Description)
	require.Equal(t, in.Picture, got.Picture)
	require.Equal(t, in.Type, got.Type)
	require.Equal(t, *in.Sum, got.Sum)
	require.Empty(t, got.Comments)

	require.Len(t, s.Offers(ctx), 4)
}

func TestStorage_CreateOffer_RetriesOnCollision(t *testing.T) {
	t.Parallel()
	// Первые два кандидата заняты сидом.
	s := New(seqIDs("iXtuEN", "UGpXXK", "NEW001"), seedOffers())

	o, err := s.CreateOffer(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, "NEW001", o.ID)
}

func TestStorage_CreateOffer_IDExhausted(t *testing.T) {
	t.Parallel()
	s := New(seqIDs("iXtuEN"), seedOffers())

	_, err := s.CreateOffer(context.Background(), validInput())
	require.ErrorIs(t, err, storage.ErrIDExhausted)
	require.Len(t, s.Offers(context.Background()), 3)
}

func TestStorage_OfferByID_NotFound(t *testing.T) {
	t.Parallel()
	s := newStorage(t)

	_, err := s.OfferByID(context.Background(), "NOEXST")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_ReturnsCopies(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	got, err := s.OfferByID(ctx, "iXtuEN")
	require.NoError(t, err)
	got.Title = "изменено"
	got.Comments[0].Text = "изменено"

	again, err := s.OfferByID(ctx, "iXtuEN")
	require.NoError(t, err)
	require.Equal(t, "Куплю пуделя", again.Title)
	require.Equal(t, "Неплохо, но дорого. Вы что?! В магазине дешевле.", again.Comments[0].Text)
}

func TestStorage_UpdateOffer(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()
	in := validInput()

	require.NoError(t, s.UpdateOffer(ctx, "jbd9zq", in))

	got, err := s.OfferByID(ctx, "jbd9zq")
	require.NoError(t, err)
	require.Equal(t, "jbd9zq", got.ID)
	require.Equal(t, in.Title, got.Title)
	require.Equal(t, 100, got.Sum)
	require.Len(t, got.Comments, 3, "комментарии сохраняются")
}

func TestStorage_UpdateOffer_UnknownLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()
	before := s.Offers(ctx)

	err := s.UpdateOffer(ctx, "NOEXST", validInput())
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Equal(t, before, s.Offers(ctx))
}

func TestStorage_DeleteOffer(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	deleted, err := s.DeleteOffer(ctx, "jbd9zq")
	require.NoError(t, err)
	require.Equal(t, "jbd9zq", deleted.ID)
	require.Len(t, deleted.Comments, 3)

	require.Len(t, s.Offers(ctx), 2)
	_, err = s.OfferByID(ctx, "jbd9zq")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Empty(t, s.Comments(ctx, "jbd9zq"), "комментарии ушли вместе с объявлением")

	_, err = s.DeleteComment(ctx, "jbd9zq", "Ibc7xC")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_DeleteOffer_Unknown(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	_, err := s.DeleteOffer(ctx, "NOEXST")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Len(t, s.Offers(ctx), 3)
}

func TestStorage_Comments(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	got := s.Comments(ctx, "UGpXXK")
	require.Len(t, got, 1)
	require.Equal(t, "Совсем немного... А где блок питания?", got[0].Text)

	missing := s.Comments(ctx, "NOEXST")
	require.NotNil(t, missing)
	require.Empty(t, missing)
}

func TestStorage_CreateComment(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	c, err := s.CreateComment(ctx, "UGpXXK", models.CommentInput{Text: "Валидному комментарию достаточно этих полей"})
	require.NoError(t, err)
	require.Len(t, c.ID, idgen.Length)
	require.Equal(t, "Валидному комментарию достаточно этих полей", c.Text)

	got := s.Comments(ctx, "UGpXXK")
	require.Len(t, got, 2)
	require.Equal(t, c.ID, got[1].ID, "новый комментарий в конце")
}

func TestStorage_CreateComment_UnknownOffer(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()
	before := s.Offers(ctx)

	_, err := s.CreateComment(ctx, "NOEXST", models.CommentInput{Text: "Неважно"})
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Equal(t, before, s.Offers(ctx))
}

func TestStorage_CreateComment_RetriesOnSiblingCollision(t *testing.T) {
	t.Parallel()
	s := New(seqIDs("V-m9ib", "fresh1"), seedOffers())

	c, err := s.CreateComment(context.Background(), "UGpXXK", models.CommentInput{Text: "t"})
	require.NoError(t, err)
	require.Equal(t, "fresh1", c.ID)
}

func TestStorage_DeleteComment_OnlyTarget(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	deleted, err := s.DeleteComment(ctx, "jbd9zq", "blp4zI")
	require.NoError(t, err)
	require.Equal(t, "blp4zI", deleted.ID)

	got := s.Comments(ctx, "jbd9zq")
	require.Len(t, got, 2)
	require.Equal(t, "Ibc7xC", got[0].ID)
	require.Equal(t, "a-Zi4P", got[1].ID)

	require.Len(t, s.Comments(ctx, "UGpXXK"), 1)
	require.Len(t, s.Comments(ctx, "iXtuEN"), 1)
}

func TestStorage_DeleteComment_NotFound(t *testing.T) {
	t.Parallel()
	s := newStorage(t)
	ctx := context.Background()

	_, err := s.DeleteComment(ctx, "UGpXXK", "NOEXST")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.DeleteComment(ctx, "NOEXST", "V-m9ib")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.Len(t, s.Comments(ctx, "UGpXXK"), 1)
}

func TestStorage_New_CopiesSeed(t *testing.T) {
	t.Parallel()
	seed := seedOffers()
	s := New(idgen.MustNew(), seed)

	seed[0].Title = "изменено снаружи"
	got, err := s.OfferByID(context.Background(), "iXtuEN")
	require.NoError(t, err)
	require.Equal(t, "Куплю пуделя", got.Title)
}

func TestReadSeed_OK(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mocks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"id":"ZlYeYG","category":["Книги"],"description":"d","picture":"item10.jpg",
   "title":"Продам книги Стивена Кинга","type":"offer","sum":36332,
   "comments":[{"id":"xOLGlS","text":"Почему в таком ужасном состоянии?"}]},
  {"id":"QAu0W1","category":"Посуда","description":"d","picture":"item07.jpg",
   "title":"Продам VHS","type":"sale","sum":85916}
]`), 0o600))

	offers, err := ReadSeed(path)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	require.Equal(t, "ZlYeYG", offers[0].ID)
	require.Len(t, offers[0].Comments, 1)
	require.Equal(t, models.Categories{"Посуда"}, offers[1].Category)
	require.NotNil(t, offers[1].Comments)
}

func TestReadSeed_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := ReadSeed(filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`[{"id":`), 0o600))
	_, err = ReadSeed(broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestLoadSeed_FallsBackToEmpty(t *testing.T) {
	t.Parallel()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	offers := LoadSeed(log, filepath.Join(t.TempDir(), "nope.json"))
	require.NotNil(t, offers)
	require.Empty(t, offers)
}

func TestStorage_New_SkipsDuplicateIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(idgen.MustNew(), []models.Offer{
		{ID: "AAAAAA", Title: "one", Comments: []models.Comment{
			{ID: "c1", Text: "первый"},
			{ID: "c1", Text: "повтор"},
		}},
		{ID: "AAAAAA", Title: "two"},
		{ID: "BBBBBB", Title: "three"},
	})

	offers := s.Offers(ctx)
	require.Len(t, offers, 2)
	require.Equal(t, "one", offers[0].Title)
	require.Equal(t, "BBBBBB", offers[1].ID)

	comments := s.Comments(ctx, "AAAAAA")
	require.Len(t, comments, 1)
	require.Equal(t, "первый", comments[0].Text)

	_, err := s.DeleteOffer(ctx, "AAAAAA")
	require.NoError(t, err)
	_, err = s.OfferByID(ctx, "AAAAAA")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoadSeed_LogsDuplicateIDs(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mocks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"id":"AAAAAA","title":"one","comments":[{"id":"c1","text":"a"},{"id":"c1","text":"b"}]},
  {"id":"AAAAAA","title":"two"}
]`), 0o600))

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	offers := LoadSeed(log, path)
	require.Len(t, offers, 1)
	require.Equal(t, "one", offers[0].Title)
	require.Len(t, offers[0].Comments, 1)
	require.Contains(t, buf.String(), "seed_duplicate_id")
	require.Contains(t, buf.String(), "id=AAAAAA/c1")
}
