package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"blogly/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTagFlow(t *testing.T) {
	router, s := newTestApp(t)

	w := doGet(router, "/tags/new")
	require.Equal(t, http.StatusOK, w.Code)

	w = doPostForm(router, "/tags/new", url.Values{"name": {"golang"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tags", w.Header().Get("Location"))

	tags, err := s.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "golang", tags[0].Name)
}

func TestCreateDuplicateTagConflict(t *testing.T) {
	router, s := newTestApp(t)
	ctx := context.Background()

	_, err := s.CreateTag(ctx, "golang")
	require.NoError(t, err)

	w := doPostForm(router, "/tags/new", url.Values{"name": {"golang"}})
	assert.Equal(t, http.StatusConflict, w.Code)

	tags, err := s.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestShowTagListsTaggedPosts(t *testing.T) {
	router, s := newTestApp(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "Jane", "Doe", "")
	require.NoError(t, err)
	tag, err := s.CreateTag(ctx, "golang")
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "Tagged post", "content", user.ID, []uint{tag.ID})
	require.NoError(t, err)

	w := doGet(router, fmt.Sprintf("/tags/%d", tag.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "golang")
	assert.Contains(t, w.Body.String(), "Tagged post")
}

func TestEditTagFlow(t *testing.T) {
	router, s := newTestApp(t)
	ctx := context.Background()

	tag, err := s.CreateTag(ctx, "golang")
	require.NoError(t, err)

	w := doPostForm(router, fmt.Sprintf("/tags/%d/edit", tag.ID), url.Values{"name": {"go"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tags", w.Header().Get("Location"))

	renamed, err := s.GetTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", renamed.Name)
}

func TestDeleteTagFlashesAndRedirects(t *testing.T) {
	router, s := newTestApp(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "Jane", "Doe", "")
	require.NoError(t, err)
	tag, err := s.CreateTag(ctx, "golang")
	require.NoError(t, err)
	post, err := s.CreatePost(ctx, "Hello", "content", user.ID, []uint{tag.ID})
	require.NoError(t, err)

	w := doPostForm(router, fmt.Sprintf("/tags/%d/delete", tag.ID), nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tags", w.Header().Get("Location"))

	_, err = s.GetTag(ctx, tag.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	tags, err := s.ListTagsForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	// The flash set on delete shows up on the next tag listing.
	req := httptest.NewRequest(http.MethodGet, "/tags", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	listing := httptest.NewRecorder()
	router.ServeHTTP(listing, req)
	require.Equal(t, http.StatusOK, listing.Code)
	assert.Contains(t, listing.Body.String(), "Tag deleted successfully!")
}
