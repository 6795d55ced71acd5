package handlers

import (
	"context"
	"fleet-console/internal/services"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
)

// screen is what a list page needs from its view model.
type screen[T any, F any] interface {
	Mount(ctx context.Context) error
	SetFilter(f F)
	New()
	Edit(id int) error
	Submit(ctx context.Context, form T) error
	Delete(ctx context.Context, id int) error
	Reject(form T, err error)
	LastNotice() services.Notice
}

var notFoundNotice = services.Notice{Kind: services.NoticeError, Text: "Record not found"}

// crudPage serves one list screen: GET renders the list, POSTs create,
// update and delete. Successful POSTs redirect back to the list.
type crudPage[T any, F any, S screen[T, F]] struct {
	path  string
	title string
	page  string

	newScreen    func() S
	decodeForm   func(url.Values) (T, error)
	decodeFilter func(url.Values) F
}

func (p crudPage[T, F, S]) register(r *mux.Router) {
	r.HandleFunc(p.path, p.list).Methods(http.MethodGet)
	r.HandleFunc(p.path, p.create).Methods(http.MethodPost)
	r.HandleFunc(p.path+"/{id:[0-9]+}", p.update).Methods(http.MethodPost)
	r.HandleFunc(p.path+"/{id:[0-9]+}/delete", p.delete).Methods(http.MethodPost)
}

// list renders the screen. ?new=1 opens the create modal and ?edit=<id> the
// edit modal.
func (p crudPage[T, F, S]) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	flash := takeFlash(w, r)

	s := p.newScreen()
	s.SetFilter(p.decodeFilter(q))
	_ = s.Mount(r.Context())

	status := http.StatusOK
	switch {
	case q.Get("new") != "":
		s.New()
	case q.Get("edit") != "":
		id, err := strconv.Atoi(q.Get("edit"))
		if err != nil || s.Edit(id) != nil {
			status = http.StatusNotFound
			flash = notFoundNotice
		}
	}

	p.render(w, r, status, s, flash)
}

func (p crudPage[T, F, S]) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	s := p.newScreen()
	_ = s.Mount(r.Context())
	s.New()

	p.submit(w, r, s)
}

func (p crudPage[T, F, S]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	s := p.newScreen()
	mountErr := s.Mount(r.Context())
	if err := s.Edit(id); err != nil {
		status := http.StatusNotFound
		if mountErr != nil {
			status = http.StatusBadGateway
		}
		p.render(w, r, status, s, notFoundNotice)
		return
	}

	p.submit(w, r, s)
}

func (p crudPage[T, F, S]) submit(w http.ResponseWriter, r *http.Request, s S) {
	form, err := p.decodeForm(r.PostForm)
	if err != nil {
		s.Reject(form, err)
		p.render(w, r, statusFor(err), s, services.Notice{})
		return
	}

	if err := s.Submit(r.Context(), form); err != nil {
		p.render(w, r, statusFor(err), s, services.Notice{})
		return
	}

	redirectWithFlash(w, r, p.path, s.LastNotice())
}

func (p crudPage[T, F, S]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	s := p.newScreen()
	_ = s.Mount(r.Context())

	if err := s.Delete(r.Context(), id); err != nil {
		p.render(w, r, statusFor(err), s, services.Notice{})
		return
	}

	redirectWithFlash(w, r, p.path, s.LastNotice())
}

// render prefers the screen's own notice over the fallback one.
func (p crudPage[T, F, S]) render(w http.ResponseWriter, r *http.Request, status int, s S, fallback services.Notice) {
	n := s.LastNotice()
	if n.IsZero() {
		n = fallback
	}
	render(w, r, status, p.page, pageData{
		Title:  p.title,
		Path:   p.path,
		Notice: n,
		Screen: s,
	})
}
