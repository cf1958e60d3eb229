package web

import (
	"fmt"
	"net/http"
)

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request) {
	h.postPage(w, r, "post_detail.html")
}

func (h *Handler) editPostForm(w http.ResponseWriter, r *http.Request) {
	h.postPage(w, r, "edit_post.html")
}

// postPage renders a page that needs a post and its owner.
func (h *Handler) postPage(w http.ResponseWriter, r *http.Request, name string) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, name, map[string]any{"post": post, "user": post.User})
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
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
	if _, err := h.posts.Update(r.Context(), id, values[0], values[1]); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", id), http.StatusFound)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ownerID, err := h.posts.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", ownerID), http.StatusFound)
}
