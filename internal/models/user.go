package models

import "time"

// User is a registered account. Accounts are immutable after creation:
// there is no update or delete path, and the API key is never rotated.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	APIKey    string    `json:"-" gorm:"column:api_key;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	Todos []Todo `json:"todos,omitempty" gorm:"foreignKey:UserID"`
}

// UserPublic is the registration response: the username together with the
// bearer credential. The key is never serialized on any other path.
type UserPublic struct {
	Username string `json:"username"`
	APIKey   string `json:"api_key"`
}

func (u *User) Public() UserPublic {
	return UserPublic{Username: u.Username, APIKey: u.APIKey}
}
