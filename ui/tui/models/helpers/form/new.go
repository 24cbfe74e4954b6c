// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{keyMap: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithInput adds an input on its own row.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{items: []int{len(form.items)}})
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
	}
}

// WithRow adds inputs side by side on one row. Ids and inputs pair up by
// position.
func WithRow[T any](ids []string, inputs ...FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for i, input := range inputs {
			if i >= len(ids) {
				break
			}
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: ids[i], input: input})
		}
		if len(row.items) > 0 {
			form.rows = append(form.rows, row)
		}
	}
}
