package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type userForm struct {
	FirstName string `form:"first_name" binding:"required,max=30"`
	LastName  string `form:"last_name" binding:"required,max=30"`
	ImageURL  string `form:"image_url" binding:"omitempty,max=200"`
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "user-list.html", gin.H{"Users": users})
}

func (h *Handler) newUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user-form.html", nil)
}

func (h *Handler) createUser(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if _, err := h.store.CreateUser(c.Request.Context(), form.FirstName, form.LastName, form.ImageURL); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}

func (h *Handler) showUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	posts, err := h.store.ListPostsByUser(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "user-detail.html", gin.H{"User": user, "Posts": posts})
}

func (h *Handler) editUserForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "user-edit.html", gin.H{"User": user})
}

func (h *Handler) updateUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.store.GetUser(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.formError(c, err)
		return
	}

	if _, err := h.store.UpdateUser(c.Request.Context(), id, form.FirstName, form.LastName, form.ImageURL); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}
