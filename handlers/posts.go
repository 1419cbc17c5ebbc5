package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type postForm struct {
	Title   string `form:"title" binding:"required,max=100"`
	Content string `form:"content" binding:"required,max=1000"`
	// Multi-select checklist; an absent selection means "no tags".
	TagIDs []uint `form:"tags"`
}

type removeTagForm struct {
	TagID uint `form:"tag_id" binding:"required"`
}

func (h *Handler) newPostForm(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "post-form.html", gin.H{"User": user, "Tags": tags})
}

func (h *Handler) createPost(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.store.GetUser(c.Request.Context(), userID); err != nil {
		h.renderError(c, err)
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if _, err := h.store.CreatePost(c.Request.Context(), form.Title, form.Content, userID, form.TagIDs); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", userID))
}

func (h *Handler) showPost(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	post, err := h.store.GetPost(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), post.UserID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	tags, err := h.store.ListTagsForPost(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "post-detail.html", gin.H{"Post": post, "User": user, "Tags": tags})
}

// removePostTag severs a single tag association from the detail page. An
// unassociated tag id is a no-op that still redirects back.
func (h *Handler) removePostTag(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.store.GetPost(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	var form removeTagForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if err := h.store.RemoveTagFromPost(c.Request.Context(), id, form.TagID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", id))
}

func (h *Handler) editPostForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	post, err := h.store.GetPost(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	current, err := h.store.ListTagsForPost(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	selected := make(map[uint]bool, len(current))
	for _, tag := range current {
		selected[tag.ID] = true
	}

	c.HTML(http.StatusOK, "post-edit.html", gin.H{"Post": post, "Tags": tags, "Selected": selected})
}

func (h *Handler) updatePost(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.store.GetPost(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if _, err := h.store.UpdatePost(c.Request.Context(), id, form.Title, form.Content, form.TagIDs); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", id))
}

func (h *Handler) deletePost(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	post, err := h.store.DeletePost(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", post.UserID))
}
