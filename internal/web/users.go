package web

import (
	"fmt"
	"net/http"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "user_listing.html", map[string]any{"users": users})
}

func (h *Handler) newUserForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "new_user.html", nil)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	values, err := formValues(r, "first-name", "last-name", "img-url")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.users.Create(r.Context(), values[0], values[1], values[2]); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	posts, err := h.posts.ListByUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "user_detail.html", map[string]any{"user": user, "posts": posts})
}

func (h *Handler) editUserForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "edit_user.html", map[string]any{"user": user})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	values, err := formValues(r, "first-name", "last-name", "img-url")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.users.Update(r.Context(), id, values[0], values[1], values[2]); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handler) newPostForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "new_post.html", map[string]any{"user": user})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	values, err := formValues(r, "post-title", "post-content")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.posts.Create(r.Context(), id, values[0], values[1]); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", id), http.StatusFound)
}
