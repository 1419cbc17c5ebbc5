package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type tagForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

func (h *Handler) listTags(c *gin.Context) {
	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		_ = session.Save()
	}

	c.HTML(http.StatusOK, "tag-list.html", gin.H{"Tags": tags, "Flashes": flashes})
}

func (h *Handler) newTagForm(c *gin.Context) {
	c.HTML(http.StatusOK, "tag-form.html", nil)
}

func (h *Handler) createTag(c *gin.Context) {
	var form tagForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if _, err := h.store.CreateTag(c.Request.Context(), form.Name); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tags")
}

func (h *Handler) showTag(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	tag, err := h.store.GetTag(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	posts, err := h.store.ListPostsForTag(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "tag-detail.html", gin.H{"Tag": tag, "Posts": posts})
}

func (h *Handler) editTagForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	tag, err := h.store.GetTag(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "tag-edit.html", gin.H{"Tag": tag})
}

func (h *Handler) updateTag(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.store.GetTag(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	var form tagForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if _, err := h.store.UpdateTag(c.Request.Context(), id, form.Name); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tags")
}

func (h *Handler) deleteTag(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.store.DeleteTag(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	session := sessions.Default(c)
	session.AddFlash("Tag deleted successfully!")
	_ = session.Save()

	c.Redirect(http.StatusSeeOther, "/tags")
}
