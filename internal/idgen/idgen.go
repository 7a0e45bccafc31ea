// Package idgen выдаёт короткие строковые идентификаторы объявлений и комментариев.
package idgen

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// Length — длина идентификатора.
const Length = 6

// Generator — источник идентификаторов.
// Уникальность не гарантируется: вероятность коллизии считается пренебрежимо малой,
// проверку занятости делает хранилище.
type Generator interface {
	Next() string
}

// NanoID — генератор на nanoid со стандартным алфавитом A-Za-z0-9_-.
type NanoID struct {
	gen func() string
}

// New создаёт генератор идентификаторов длины Length.
func New() (*NanoID, error) {
	gen, err := nanoid.Standard(Length)
	if err != nil {
		return nil, fmt.Errorf("idgen: init nanoid: %w", err)
	}

	return &NanoID{gen: gen}, nil
}

// MustNew — обёртка над New с panic при ошибке.
func MustNew() *NanoID {
	g, err := New()
	if err != nil {
		panic(err)
	}

	return g
}

// Next возвращает очередной идентификатор.
func (n *NanoID) Next() string {
	return n.gen()
}

// Func адаптирует обычную функцию к Generator (удобно в тестах).
type Func func() string

// Next вызывает f.
func (f Func) Next() string { return f() }
