package admin

import (
	"context"
	"sync"
)

// Editor is the form state behind a create/update screen. With an
// editing id set, Submit updates that record; without one it creates.
type Editor[F any] struct {
	mu        sync.Mutex
	blank     F
	form      F
	editingID string
}

func NewEditor[F any](blank F) *Editor[F] {
	return &Editor[F]{blank: blank, form: blank}
}

// Edit loads an existing record into the form.
func (e *Editor[F]) Edit(id string, form F) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editingID = id
	e.form = form
}

// Set replaces the form contents without changing the mode.
func (e *Editor[F]) Set(form F) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form = form
}

// Reset clears the form and leaves edit mode.
func (e *Editor[F]) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editingID = ""
	e.form = e.blank
}

func (e *Editor[F]) Form() F {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// EditingID returns the id being edited; ok is false in create mode.
func (e *Editor[F]) EditingID() (id string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editingID, e.editingID != ""
}

// Submit dispatches to update or create and resets the form on success.
// On failure the form and mode are kept so the operator can correct them.
func (e *Editor[F]) Submit(
	ctx context.Context,
	create func(context.Context, F) error,
	update func(ctx context.Context, id string, form F) error,
) (updated bool, err error) {
	id, editing := e.EditingID()
	form := e.Form()

	if editing {
		err = update(ctx, id, form)
	} else {
		err = create(ctx, form)
	}
	if err != nil {
		return editing, err
	}

	e.Reset()
	return editing, nil
}
