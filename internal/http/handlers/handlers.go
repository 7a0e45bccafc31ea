// Package handlers — REST-эндпойнты сервиса объявлений.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pribylovaa/buy-and-sell/internal/service"
)

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeText — короткий текстовый ответ (PUT /offers/{offerId} отвечает "Updated").
func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля
// и любые данные после первого JSON-значения.
// Любая ошибка разбора — это ErrInvalidArgument.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("decode body: %w: %w", service.ErrInvalidArgument, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode body: %w: trailing data after JSON value", service.ErrInvalidArgument)
	}
	return nil
}
