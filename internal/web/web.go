// Package web serves the HTML interface for users and their posts.
package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"blogly/internal/repositories"
	"blogly/internal/services"
)

// Handler presents a Web UI to manage users and posts.
type Handler struct {
	router    chi.Router
	users     services.UserService
	posts     services.PostService
	templates *templates
	debug     bool
}

// New initializes a new web handler.
func New(users services.UserService, posts services.PostService, debug bool) (*Handler, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	h := &Handler{
		users:     users,
		posts:     posts,
		templates: tmpl,
		debug:     debug,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	registerRoutes(r, h)
	h.router = r
	return h, nil
}

// ServeHTTP serves HTTP requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.debug {
		log.Printf("web: %s %s\n", r.Method, r.URL)
	}
	h.router.ServeHTTP(w, r)
}

func registerRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.home)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/new", h.newUserForm)
		r.Post("/new", h.createUser)
		r.Get("/{id}", h.showUser)
		r.Get("/{id}/edit", h.editUserForm)
		r.Post("/{id}/edit", h.updateUser)
		r.Post("/{id}/delete", h.deleteUser)
		r.Get("/{id}/posts/new", h.newPostForm)
		r.Post("/{id}/posts/new", h.createPost)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/{id}", h.showPost)
		r.Get("/{id}/edit", h.editPostForm)
		r.Post("/{id}/edit", h.updatePost)
		r.Post("/{id}/delete", h.deletePost)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/users", http.StatusFound)
}

var (
	errBadID        = errors.New("malformed id")
	errMissingField = errors.New("missing form field")
)

// pathID parses the {id} route parameter. Ids are positive integers;
// anything else can never match a row.
func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%q: %w", raw, errBadID)
	}
	return uint(id), nil
}

// formValues returns the posted values for keys in order. Every key must be
// present in the body; empty values are left to the services to judge.
func formValues(r *http.Request, keys ...string) ([]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", errors.Join(errMissingField, err))
	}
	values := make([]string, len(keys))
	for i, key := range keys {
		v, ok := r.PostForm[key]
		if !ok || len(v) == 0 {
			return nil, fmt.Errorf("%s: %w", key, errMissingField)
		}
		values[i] = v[0]
	}
	return values, nil
}

// fail maps err onto a status code. Storage errors are logged, never shown.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, errBadID):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, errMissingField):
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
	default:
		log.Printf("web: %s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
