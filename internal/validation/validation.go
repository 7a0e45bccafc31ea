// Package validation — проверка входящих объявлений и комментариев до обращения к хранилищу.
//
// Проверка устроена как цепочка чистых правил: каждое правило либо пропускает вход,
// либо возвращает причину отказа; цепочка останавливается на первом отказе.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/buy-and-sell/internal/models"
)

// ErrInvalid — вход не прошёл проверку.
var ErrInvalid = errors.New("invalid payload")

// Error — отказ конкретного правила.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap позволяет проверять отказ через errors.Is(err, ErrInvalid).
func (e *Error) Unwrap() error { return ErrInvalid }

// Rule — одно правило проверки входа типа T.
type Rule[T any] func(T) error

// Chain собирает правила в одно; выполнение идёт по порядку до первого отказа.
func Chain[T any](rules ...Rule[T]) Rule[T] {
	return func(in T) error {
		for _, rule := range rules {
			if err := rule(in); err != nil {
				return err
			}
		}
		return nil
	}
}

// Validator хранит подготовленные цепочки правил.
type Validator struct {
	validate *validator.Validate
	offer    Rule[models.OfferInput]
	comment  Rule[models.CommentInput]
}

// New создаёт Validator.
func New() *Validator {
	v := &Validator{validate: validator.New()}

	v.offer = Chain(
		field(v, "category", "required,min=1,dive,required", func(in models.OfferInput) any { return []string(in.Category) }),
		field(v, "title", "required", func(in models.OfferInput) any { return in.Title }),
		field(v, "description", "required", func(in models.OfferInput) any { return in.Description }),
		field(v, "picture", "required", func(in models.OfferInput) any { return in.Picture }),
		field(v, "type", "required", func(in models.OfferInput) any { return in.Type }),
		sumRule(v),
	)

	v.comment = Chain(
		field(v, "text", "required", func(in models.CommentInput) any { return strings.TrimSpace(in.Text) }),
	)

	return v
}

// Offer проверяет вход объявления.
func (v *Validator) Offer(in models.OfferInput) error {
	return v.offer(in)
}

// Comment проверяет вход комментария.
func (v *Validator) Comment(in models.CommentInput) error {
	return v.comment(in)
}

// field строит правило для одного поля по тегу validator/v10.
func field[T any](v *Validator, name, tag string, get func(T) any) Rule[T] {
	return func(in T) error {
		if err := v.validate.Var(get(in), tag); err != nil {
			return &Error{Field: name, Reason: reason(err)}
		}
		return nil
	}
}

// sumRule: поле обязано присутствовать (ноль допустим) и быть неотрицательным.
func sumRule(v *Validator) Rule[models.OfferInput] {
	return func(in models.OfferInput) error {
		if in.Sum == nil {
			return &Error{Field: "sum", Reason: "required"}
		}
		if err := v.validate.Var(*in.Sum, "gte=0"); err != nil {
			return &Error{Field: "sum", Reason: reason(err)}
		}
		return nil
	}
}

// reason достаёт тег сработавшего ограничения ("required", "min", "gte").
func reason(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}

	return err.Error()
}
