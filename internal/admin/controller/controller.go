package controller

import (
	"context"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/admin/editor"
)

// Phase is where a controller is in its lifecycle.
type Phase string

const (
	Loading    Phase = "loading"
	Viewing    Phase = "viewing"
	Submitting Phase = "submitting"
	Deleting   Phase = "deleting"
)

// Backend performs the reads and mutations for one content section.
type Backend[T, In any] interface {
	Fetch(ctx context.Context) ([]T, error)
	Create(ctx context.Context, input In) action.Result
	Update(ctx context.Context, item *T, input In) action.Result
	Delete(ctx context.Context, item *T) action.Result
}

// Notifier surfaces toasts to the operator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Messages are the success toasts for a section.
type Messages struct {
	Created   string
	Updated   string
	Deleted   string
	LoadError string
}

// Controller drives one admin section: fetch on mount, edit through the
// modal, re-fetch after every successful mutation.
type Controller[T, In any] struct {
	backend  Backend[T, In]
	notify   Notifier
	modal    *editor.Modal[T]
	messages Messages

	phase   Phase
	items   []T
	loadErr error
}

// New builds a controller in the Loading phase.
func New[T, In any](backend Backend[T, In], notify Notifier, modal *editor.Modal[T], messages Messages) *Controller[T, In] {
	if modal == nil {
		modal = editor.New[T]()
	}
	return &Controller[T, In]{
		backend:  backend,
		notify:   notify,
		modal:    modal,
		messages: messages,
		phase:    Loading,
	}
}

// Mount loads the current rows and moves to Viewing.
func (c *Controller[T, In]) Mount(ctx context.Context) error {
	c.phase = Loading
	return c.refresh(ctx)
}

func (c *Controller[T, In]) refresh(ctx context.Context) error {
	items, err := c.backend.Fetch(ctx)
	c.phase = Viewing
	if err != nil {
		c.loadErr = err
		c.notify.Error(c.messages.LoadError)
		return err
	}
	c.items = items
	c.loadErr = nil
	return nil
}

// Phase returns the current phase.
func (c *Controller[T, In]) Phase() Phase { return c.phase }

// Items returns the rows from the last fetch.
func (c *Controller[T, In]) Items() []T { return c.items }

// Err returns the last fetch error.
func (c *Controller[T, In]) Err() error { return c.loadErr }

// Modal exposes the dialog state.
func (c *Controller[T, In]) Modal() *editor.Modal[T] { return c.modal }

// OpenCreate opens a blank form.
func (c *Controller[T, In]) OpenCreate() { c.modal.Open(nil) }

// OpenEdit opens the form on item.
func (c *Controller[T, In]) OpenEdit(item *T) { c.modal.Open(item) }

// Close hides the form.
func (c *Controller[T, In]) Close() { c.modal.Close() }

// Submit creates or updates depending on how the modal was opened. On
// success the rows are re-fetched and the modal closes; on failure it stays
// open so the operator can fix the input.
func (c *Controller[T, In]) Submit(ctx context.Context, input In) action.Result {
	var res action.Result

	switch state := c.modal.State().(type) {
	case editor.Open[T]:
		c.phase = Submitting
		if state.Item == nil {
			res = c.backend.Create(ctx, input)
		} else {
			res = c.backend.Update(ctx, state.Item, input)
		}
	case editor.Closed[T]:
		return action.Fail(action.KindValidation, "Nenhum formulário aberto")
	}

	c.phase = Viewing
	if !res.Success {
		c.notify.Error(res.Error)
		return res
	}

	if c.modal.Editing() {
		c.notify.Success(c.messages.Updated)
	} else {
		c.notify.Success(c.messages.Created)
	}
	c.refresh(ctx)
	c.modal.Close()
	return res
}

// Delete removes item once confirmed. Without confirmation nothing is
// called and ok is false.
func (c *Controller[T, In]) Delete(ctx context.Context, item *T, confirm bool) (res action.Result, ok bool) {
	if !confirm || item == nil {
		return action.Result{}, false
	}

	c.phase = Deleting
	res = c.backend.Delete(ctx, item)
	c.phase = Viewing

	if !res.Success {
		c.notify.Error(res.Error)
		return res, true
	}
	c.notify.Success(c.messages.Deleted)
	c.refresh(ctx)
	return res, true
}
