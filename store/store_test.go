package store_test

import (
	"context"
	"testing"

	"blogly/models"
	"blogly/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a private in-memory database per test. The pool is
// pinned to one connection so the in-memory schema survives.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{}, &models.PostTag{}))

	return store.New(db)
}

func mustCreateUser(t *testing.T, s *store.Store) *models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), "Jane", "Doe", "")
	require.NoError(t, err)
	return user
}

func mustCreateTag(t *testing.T, s *store.Store, name string) *models.Tag {
	t.Helper()
	tag, err := s.CreateTag(context.Background(), name)
	require.NoError(t, err)
	return tag
}

func mustCreatePost(t *testing.T, s *store.Store, userID uint, tagIDs []uint) *models.Post {
	t.Helper()
	post, err := s.CreatePost(context.Background(), "A title", "Some content", userID, tagIDs)
	require.NoError(t, err)
	return post
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
