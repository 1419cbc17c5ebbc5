package models

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"size:30;not null"`
	LastName  string `json:"last_name" gorm:"size:30;not null"`
	ImageURL  string `json:"image_url" gorm:"size:200"`
	Posts     []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
