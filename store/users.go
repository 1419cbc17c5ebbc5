package store

import (
	"context"
	"errors"

	"blogly/models"

	"gorm.io/gorm"
)

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, firstName, lastName, imageURL string) (*models.User, error) {
	if firstName == "" {
		return nil, &ValidationError{Field: "first_name"}
	}
	if lastName == "" {
		return nil, &ValidationError{Field: "last_name"}
	}

	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  imageURL,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, firstName, lastName, imageURL string) (*models.User, error) {
	if firstName == "" {
		return nil, &ValidationError{Field: "first_name"}
	}
	if lastName == "" {
		return nil, &ValidationError{Field: "last_name"}
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.ImageURL = imageURL
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user together with their posts and those posts' tag
// associations, all in one transaction.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}
