package services

import "slices"

// Record is an entry of a CRUD collection.
type Record[T any] interface {
	Key() int
	WithKey(id int) T
	Validate() error
}

// Filter selects the visible subset of a collection. The zero value of a
// filter must match everything.
type Filter[T any] interface {
	Match(T) bool
}

// Modal is the form dialog of a screen. Editing is nil while creating.
type Modal[T any] struct {
	Open    bool
	Editing *T
	Form    T
}

func (m Modal[T]) IsEdit() bool { return m.Editing != nil }

// ListState is the state of a list screen. Transitions return a new value and
// never modify the receiver or its Items.
type ListState[T Record[T], F Filter[T]] struct {
	Items  []T
	Filter F
	Modal  Modal[T]
}

func (s ListState[T, F]) Loaded(items []T) ListState[T, F] {
	s.Items = slices.Clone(items)
	if s.Items == nil {
		s.Items = []T{}
	}
	return s
}

func (s ListState[T, F]) WithFilter(f F) ListState[T, F] {
	s.Filter = f
	return s
}

func (s ListState[T, F]) OpenCreate(form T) ListState[T, F] {
	s.Modal = Modal[T]{Open: true, Form: form}
	return s
}

// OpenEdit opens the modal pre-populated with the record id. It reports false
// when the collection has no such record.
func (s ListState[T, F]) OpenEdit(id int) (ListState[T, F], bool) {
	rec, ok := s.Find(id)
	if !ok {
		return s, false
	}
	s.Modal = Modal[T]{Open: true, Editing: &rec, Form: rec}
	return s, true
}

// WithForm keeps the modal open showing form, as after a failed submit.
func (s ListState[T, F]) WithForm(form T) ListState[T, F] {
	s.Modal.Open = true
	s.Modal.Form = form
	return s
}

func (s ListState[T, F]) CloseModal() ListState[T, F] {
	s.Modal = Modal[T]{}
	return s
}

func (s ListState[T, F]) Created(rec T) ListState[T, F] {
	items := make([]T, 0, len(s.Items)+1)
	items = append(items, s.Items...)
	s.Items = append(items, rec)
	return s
}

func (s ListState[T, F]) Updated(rec T) ListState[T, F] {
	items := slices.Clone(s.Items)
	for i := range items {
		if items[i].Key() == rec.Key() {
			items[i] = rec
		}
	}
	s.Items = items
	return s
}

func (s ListState[T, F]) Removed(id int) ListState[T, F] {
	s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(rec T) bool {
		return rec.Key() == id
	})
	return s
}

func (s ListState[T, F]) Find(id int) (T, bool) {
	for _, rec := range s.Items {
		if rec.Key() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Visible is the subset of Items matching the filter, in collection order.
func (s ListState[T, F]) Visible() []T {
	out := make([]T, 0, len(s.Items))
	for _, rec := range s.Items {
		if s.Filter.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}
