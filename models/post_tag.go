package models

// PostTag is one edge of the Post/Tag many-to-many relation. The composite
// primary key guarantees at most one row per (post, tag) pair.
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}
