package services

import (
	"context"
	"errors"
	"fleet-console/internal/ports"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// Messages are the notice texts of one screen. The error texts are used when
// the failure carries no message of its own.
type Messages struct {
	Fetch  string
	Add    string
	Update string
	Delete string

	Added   string
	Updated string
	Deleted string
}

// CRUDScreen binds a ListState to a remote collection. A screen lives for
// one mount and is not safe for concurrent use.
type CRUDScreen[T Record[T], F Filter[T]] struct {
	State  ListState[T, F]
	Notice Notice

	name     string
	api      ports.Resource[T]
	journal  journalWriter
	messages Messages

	// onCreate adjusts a form before it is posted.
	onCreate func(form T) T
	// onUpdate merges a form with the record being edited before it is put.
	onUpdate func(current, form T) T
	describe func(T) string
}

func newCRUDScreen[T Record[T], F Filter[T]](
	name string,
	resource string,
	api ports.Resource[T],
	journal ports.Journal,
	messages Messages,
) *CRUDScreen[T, F] {
	return &CRUDScreen[T, F]{
		State:    ListState[T, F]{Items: []T{}},
		name:     name,
		api:      api,
		journal:  journalWriter{journal: journal, resource: resource},
		messages: messages,
	}
}

func (s *CRUDScreen[T, F]) Name() string { return s.name }

// Mount fetches the collection. On failure the list is empty and an error
// notice is set.
func (s *CRUDScreen[T, F]) Mount(ctx context.Context) error {
	items, err := s.api.List(ctx)
	if err != nil {
		s.State = s.State.Loaded(nil)
		s.Notice = s.Notice.join(errorNotice(s.name, s.messages.Fetch, err))
		return fmt.Errorf("mount %s: %w", s.name, err)
	}
	s.State = s.State.Loaded(items)
	return nil
}

func (s *CRUDScreen[T, F]) SetFilter(f F) {
	s.State = s.State.WithFilter(f)
}

func (s *CRUDScreen[T, F]) New() {
	var form T
	s.State = s.State.OpenCreate(form)
}

func (s *CRUDScreen[T, F]) Edit(id int) error {
	next, ok := s.State.OpenEdit(id)
	if !ok {
		return fmt.Errorf("edit %s id=%d: %w", s.name, id, ErrNotFound)
	}
	s.State = next
	return nil
}

// LastNotice is the notice left by the latest operation.
func (s *CRUDScreen[T, F]) LastNotice() Notice { return s.Notice }

// Reject keeps the modal open with form and reports err, for input that
// could not be decoded into a record.
func (s *CRUDScreen[T, F]) Reject(form T, err error) {
	fallback := s.messages.Add
	if s.State.Modal.IsEdit() {
		fallback = s.messages.Update
	}
	s.State = s.State.WithForm(form)
	s.Notice = errorNotice(s.name, fallback, err)
}

func (s *CRUDScreen[T, F]) Cancel() {
	s.State = s.State.CloseModal()
}

// Submit validates form and then updates the record being edited, or creates
// a new one. On success the local collection is patched with the stored record
// and the modal closes. On failure the collection is unchanged and the modal
// stays open with form.
func (s *CRUDScreen[T, F]) Submit(ctx context.Context, form T) error {
	editing := s.State.Modal.Editing

	fallback := s.messages.Add
	if editing != nil {
		fallback = s.messages.Update
	}

	if err := form.Validate(); err != nil {
		s.State = s.State.WithForm(form)
		s.Notice = errorNotice(s.name, fallback, err)
		return err
	}

	if editing != nil {
		current := *editing
		id := current.Key()
		body := form.WithKey(id)
		if s.onUpdate != nil {
			body = s.onUpdate(current, body)
		}

		rec, err := s.api.Update(ctx, id, body)
		if err != nil {
			s.State = s.State.WithForm(form)
			s.Notice = errorNotice(s.name, fallback, err)
			return err
		}
		if rec.Key() == 0 {
			rec = rec.WithKey(id)
		}

		s.State = s.State.Updated(rec).CloseModal()
		s.Notice = successNotice(s.name, s.messages.Updated)
		s.journal.record(ctx, ActionUpdate, id, s.summary(rec))
		return nil
	}

	body := form
	if s.onCreate != nil {
		body = s.onCreate(body)
	}

	rec, err := s.api.Create(ctx, body)
	if err != nil {
		s.State = s.State.WithForm(form)
		s.Notice = errorNotice(s.name, fallback, err)
		return err
	}

	s.State = s.State.Created(rec).CloseModal()
	s.Notice = successNotice(s.name, s.messages.Added)
	s.journal.record(ctx, ActionCreate, rec.Key(), s.summary(rec))
	return nil
}

// Delete removes the record remotely and then locally. On failure the
// collection is unchanged.
func (s *CRUDScreen[T, F]) Delete(ctx context.Context, id int) error {
	rec, found := s.State.Find(id)

	if err := s.api.Delete(ctx, id); err != nil {
		s.Notice = errorNotice(s.name, s.messages.Delete, err)
		return err
	}

	s.State = s.State.Removed(id)
	s.Notice = successNotice(s.name, s.messages.Deleted)

	var summary string
	if found {
		summary = s.summary(rec)
	}
	s.journal.record(ctx, ActionDelete, id, summary)
	return nil
}

func (s *CRUDScreen[T, F]) summary(rec T) string {
	if s.describe == nil {
		return ""
	}
	return s.describe(rec)
}
