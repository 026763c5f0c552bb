package ui

import (
	"errors"
	"iter"
	"unicode/utf8"
)

// ErrEmptyMenu is returned when a menu is created without options.
var ErrEmptyMenu = errors.New("ui: menu needs at least one option")

// Option is one selectable menu entry.
type Option[T any] struct {
	Label string
	Value T
}

// Menu is a list of options with a cursor. The cursor wraps at both ends.
type Menu[T any] struct {
	options []Option[T]
	cursor  int
}

// NewMenu creates a menu with the cursor on the first option.
func NewMenu[T any](options ...Option[T]) (*Menu[T], error) {
	if len(options) == 0 {
		return nil, ErrEmptyMenu
	}
	return &Menu[T]{options: options}, nil
}

// MustMenu creates a menu, panicking on error.
func MustMenu[T any](options ...Option[T]) *Menu[T] {
	m, err := NewMenu(options...)
	if err != nil {
		panic(err)
	}
	return m
}

// Next moves the cursor down, wrapping to the first option.
func (m *Menu[T]) Next() {
	m.cursor = (m.cursor + 1) % len(m.options)
}

// Prev moves the cursor up, wrapping to the last option.
func (m *Menu[T]) Prev() {
	m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
}

// Index returns the cursor position.
func (m *Menu[T]) Index() int {
	return m.cursor
}

// Len returns the number of options.
func (m *Menu[T]) Len() int {
	return len(m.options)
}

// Selected returns the option under the cursor.
func (m *Menu[T]) Selected() Option[T] {
	return m.options[m.cursor]
}

// IsSelected reports whether i is the cursor position.
func (m *Menu[T]) IsSelected(i int) bool {
	return i == m.cursor
}

// Items yields each option with its index, without touching the cursor.
func (m *Menu[T]) Items() iter.Seq2[int, Option[T]] {
	return func(yield func(int, Option[T]) bool) {
		for i, opt := range m.options {
			if !yield(i, opt) {
				return
			}
		}
	}
}

// Widest returns the length in characters of the longest label.
func (m *Menu[T]) Widest() int {
	widest := 0
	for _, opt := range m.Items() {
		widest = max(widest, utf8.RuneCountInString(opt.Label))
	}
	return widest
}
