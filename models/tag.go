package models

type Tag struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"size:100;unique;not null"`
	PostTags []PostTag `json:"-" gorm:"foreignKey:TagID"`
}
