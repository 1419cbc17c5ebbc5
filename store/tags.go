package store

import (
	"context"
	"errors"

	"blogly/models"

	"gorm.io/gorm"
)

func (s *Store) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Store) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a tag with a unique name. The unique index on name is the
// arbiter, so concurrent creates of the same name cannot both succeed.
func (s *Store) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	tag := models.Tag{Name: name}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &tag, nil
}

func (s *Store) UpdateTag(ctx context.Context, id uint, name string) (*models.Tag, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	tag, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	tag.Name = name
	if err := s.db.WithContext(ctx).Save(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return tag, nil
}

// DeleteTag severs every association with posts first, then removes the tag
// itself. Both phases commit together.
func (s *Store) DeleteTag(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// ListPostsForTag returns the posts associated with a tag via the join table.
func (s *Store) ListPostsForTag(ctx context.Context, tagID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).Table("posts").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Order("posts.id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
