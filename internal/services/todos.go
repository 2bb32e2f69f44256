package services

import (
	"errors"

	"todo-service/backend/internal/models"

	"gorm.io/gorm"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoUpdate carries a partial update: nil fields leave the stored value
// untouched.
type TodoUpdate struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

type TodoService interface {
	ListTodos(db *gorm.DB, userID uint) ([]models.Todo, error)
	CreateTodo(db *gorm.DB, userID uint, title string) (*models.Todo, error)
	UpdateTodo(db *gorm.DB, userID, todoID uint, update TodoUpdate) (*models.Todo, error)
	DeleteTodo(db *gorm.DB, userID, todoID uint) error
}

type TodoServiceImpl struct{}

func NewTodoService() *TodoServiceImpl {
	return &TodoServiceImpl{}
}

func (s *TodoServiceImpl) ListTodos(db *gorm.DB, userID uint) ([]models.Todo, error) {
	todos := []models.Todo{}
	if err := db.Where("user_id = ?", userID).Order("id").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoServiceImpl) CreateTodo(db *gorm.DB, userID uint, title string) (*models.Todo, error) {
	todo := models.Todo{Title: title, UserID: userID}
	if err := db.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *TodoServiceImpl) UpdateTodo(db *gorm.DB, userID, todoID uint, update TodoUpdate) (*models.Todo, error) {
	todo, err := s.findOwned(db, userID, todoID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		todo.Title = *update.Title
	}
	if update.Done != nil {
		todo.Done = *update.Done
	}

	if err := db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoServiceImpl) DeleteTodo(db *gorm.DB, userID, todoID uint) error {
	todo, err := s.findOwned(db, userID, todoID)
	if err != nil {
		return err
	}
	return db.Delete(todo).Error
}

// findOwned treats a todo owned by another user the same as a missing one,
// so callers cannot probe for foreign ids.
func (s *TodoServiceImpl) findOwned(db *gorm.DB, userID, todoID uint) (*models.Todo, error) {
	var todo models.Todo
	err := db.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
