package store

import (
	"context"
	"errors"
	"time"

	"blogly/models"

	"gorm.io/gorm"
)

func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *Store) ListPostsByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post owned by userID and associates the given tags.
// Tag ids that do not resolve to an existing tag are skipped, not an error.
func (s *Store) CreatePost(ctx context.Context, title, content string, userID uint, tagIDs []uint) (*models.Post, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if content == "" {
		return nil, &ValidationError{Field: "content"}
	}

	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		post = models.Post{
			Title:     title,
			Content:   content,
			CreatedAt: time.Now(),
			UserID:    userID,
		}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		resolved, err := resolveTagIDs(tx, tagIDs)
		if err != nil {
			return err
		}
		for _, tagID := range resolved {
			if err := tx.Create(&models.PostTag{PostID: post.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces the post's title, content and full tag set. The tag
// replacement applies the symmetric difference against the current
// associations, so converging on the submitted set is idempotent.
func (s *Store) UpdatePost(ctx context.Context, id uint, title, content string, tagIDs []uint) (*models.Post, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if content == "" {
		return nil, &ValidationError{Field: "content"}
	}

	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		post.Title = title
		post.Content = content
		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		wanted, err := resolveTagIDs(tx, tagIDs)
		if err != nil {
			return err
		}

		var current []uint
		if err := tx.Model(&models.PostTag{}).Where("post_id = ?", id).Pluck("tag_id", &current).Error; err != nil {
			return err
		}

		wantedSet := make(map[uint]bool, len(wanted))
		for _, tagID := range wanted {
			wantedSet[tagID] = true
		}
		currentSet := make(map[uint]bool, len(current))
		for _, tagID := range current {
			currentSet[tagID] = true
		}

		var removed []uint
		for _, tagID := range current {
			if !wantedSet[tagID] {
				removed = append(removed, tagID)
			}
		}
		if len(removed) > 0 {
			if err := tx.Where("post_id = ? AND tag_id IN ?", id, removed).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
		}

		for _, tagID := range wanted {
			if currentSet[tagID] {
				continue
			}
			if err := tx.Create(&models.PostTag{PostID: id, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// RemoveTagFromPost deletes a single association. Removing a tag that is not
// associated with the post is a no-op.
func (s *Store) RemoveTagFromPost(ctx context.Context, postID, tagID uint) error {
	return s.db.WithContext(ctx).
		Where("post_id = ? AND tag_id = ?", postID, tagID).
		Delete(&models.PostTag{}).Error
}

// DeletePost removes the post and all of its tag associations. The deleted
// post is returned so callers can redirect to its owner.
func (s *Store) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListTagsForPost returns the tags associated with a post via the join table.
func (s *Store) ListTagsForPost(ctx context.Context, postID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.WithContext(ctx).Table("tags").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.id").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// resolveTagIDs filters the requested tag ids down to those that exist.
func resolveTagIDs(tx *gorm.DB, tagIDs []uint) ([]uint, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	if err := tx.Model(&models.Tag{}).Where("id IN ?", tagIDs).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
