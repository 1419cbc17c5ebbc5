// Package handlers maps the HTTP routes onto store operations and template
// renders. Every mutation ends in a redirect so a refresh never resubmits.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"blogly/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	router.GET("/users", h.listUsers)
	router.GET("/users/new", h.newUserForm)
	router.POST("/users/new", h.createUser)
	router.GET("/users/:id", h.showUser)
	router.GET("/users/:id/edit", h.editUserForm)
	router.POST("/users/:id/edit", h.updateUser)
	router.POST("/users/:id/delete", h.deleteUser)
	router.GET("/users/:id/posts/new", h.newPostForm)
	router.POST("/users/:id/posts/new", h.createPost)

	router.GET("/posts/:id", h.showPost)
	router.POST("/posts/:id", h.removePostTag)
	router.GET("/posts/:id/edit", h.editPostForm)
	router.POST("/posts/:id/edit", h.updatePost)
	router.POST("/posts/:id/delete", h.deletePost)

	router.GET("/tags", h.listTags)
	router.GET("/tags/new", h.newTagForm)
	router.POST("/tags/new", h.createTag)
	router.GET("/tags/:id", h.showTag)
	router.GET("/tags/:id/edit", h.editTagForm)
	router.POST("/tags/:id/edit", h.updateTag)
	router.POST("/tags/:id/delete", h.deleteTag)
}

// idParam parses the :id route parameter. A non-numeric id can never match a
// row, so callers treat a parse failure the same as a missing record.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, store.ErrNotFound
	}
	return uint(id), nil
}

// renderError maps store errors onto HTTP statuses and renders the error page.
func (h *Handler) renderError(c *gin.Context, err error) {
	var validationErr *store.ValidationError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate):
		status = http.StatusConflict
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	}

	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": err.Error(),
	})
}

// formError renders a 400 for a form submission that failed binding.
func (h *Handler) formError(c *gin.Context, err error) {
	var bindingErrs validator.ValidationErrors

	message := "invalid form submission"
	if errors.As(err, &bindingErrs) && len(bindingErrs) > 0 {
		message = bindingErrs[0].Field() + " failed " + bindingErrs[0].Tag() + " validation"
	}

	c.HTML(http.StatusBadRequest, "error.html", gin.H{
		"Status":  http.StatusBadRequest,
		"Message": message,
	})
}
