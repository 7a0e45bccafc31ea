// Package models содержит доменные сущности сервиса объявлений.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Типы объявлений. Значение хранится как пришло, без нормализации регистра.
const (
	OfferTypeOffer = "offer"
	OfferTypeSale  = "sale"
)

// Offer — объявление.
//
// Особенности:
//   - ID — 6 символов из URL-safe алфавита, выдаётся при создании и не меняется;
//   - Comments принадлежат объявлению и удаляются вместе с ним;
//   - порядок Comments совпадает с порядком добавления.
type Offer struct {
	ID          string     `json:"id"`
	Category    Categories `json:"category"`
	Description string     `json:"description"`
	Picture     string     `json:"picture"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Sum         int        `json:"sum"`
	Comments    []Comment  `json:"comments"`
}

// Comment — комментарий к объявлению.
type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// OfferInput — входные данные создания/замены объявления.
// Sum — указатель, чтобы отличать «поле не передано» от нуля.
type OfferInput struct {
	Category    Categories `json:"category"`
	Description string     `json:"description"`
	Picture     string     `json:"picture"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Sum         *int       `json:"sum"`
}

// CommentInput — входные данные создания комментария.
type CommentInput struct {
	Text string `json:"text"`
}

// Categories — список категорий объявления.
// На входе допускается как строка, так и массив строк; наружу всегда массив.
type Categories []string

// UnmarshalJSON принимает "Книги" и ["Книги", "Авто"].
func (c *Categories) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return fmt.Errorf("category: %w", err)
		}
		*c = Categories{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	*c = many
	return nil
}

// Clone возвращает глубокую копию объявления вместе с комментариями.
func (o Offer) Clone() Offer {
	out := o
	if o.Category != nil {
		out.Category = append(Categories(nil), o.Category...)
	}
	out.Comments = append(make([]Comment, 0, len(o.Comments)), o.Comments...)
	return out
}

// Apply переносит изменяемые поля из входных данных.
// ID и Comments не трогаются.
func (o *Offer) Apply(in OfferInput) {
	o.Category = append(Categories(nil), in.Category...)
	o.Description = in.Description
	o.Picture = in.Picture
	o.Title = in.Title
	o.Type = in.Type
	if in.Sum != nil {
		o.Sum = *in.Sum
	}
}
