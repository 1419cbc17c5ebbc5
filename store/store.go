// Package store implements the persistence model for users, posts and tags
// on top of an injected gorm connection. Multi-step mutations run inside a
// single transaction so a partial failure never leaves the association table
// half-updated.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
