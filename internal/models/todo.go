package models

// Todo is a single task owned by exactly one user for its whole lifetime.
// The owner reference is enforced by the service layer, not by a database
// constraint.
type Todo struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"not null"`
	Done   bool   `json:"done" gorm:"not null;default:false"`
	UserID uint   `json:"user_id" gorm:"index;not null"`
}
