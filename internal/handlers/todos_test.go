package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-service/backend/internal/handlers"
	"todo-service/backend/internal/models"
	"todo-service/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MockTodoService struct {
	shouldReturnError bool
	returnNotFound    bool
	todos             []models.Todo
	nextID            uint
}

func (m *MockTodoService) ListTodos(db *gorm.DB, userID uint) ([]models.Todo, error) {
	if m.shouldReturnError {
		return nil, gorm.ErrInvalidData
	}
	owned := []models.Todo{}
	for _, todo := range m.todos {
		if todo.UserID == userID {
			owned = append(owned, todo)
		}
	}
	return owned, nil
}

func (m *MockTodoService) CreateTodo(db *gorm.DB, userID uint, title string) (*models.Todo, error) {
	if m.shouldReturnError {
		return nil, gorm.ErrInvalidData
	}
	m.nextID++
	todo := models.Todo{ID: m.nextID, Title: title, UserID: userID}
	m.todos = append(m.todos, todo)
	return &todo, nil
}

func (m *MockTodoService) UpdateTodo(db *gorm.DB, userID, todoID uint, update services.TodoUpdate) (*models.Todo, error) {
	if m.shouldReturnError {
		return nil, gorm.ErrInvalidData
	}
	if m.returnNotFound {
		return nil, services.ErrTodoNotFound
	}
	todo := models.Todo{ID: todoID, Title: "Test Todo", UserID: userID}
	if update.Title != nil {
		todo.Title = *update.Title
	}
	if update.Done != nil {
		todo.Done = *update.Done
	}
	return &todo, nil
}

func (m *MockTodoService) DeleteTodo(db *gorm.DB, userID, todoID uint) error {
	if m.shouldReturnError {
		return gorm.ErrInvalidData
	}
	if m.returnNotFound {
		return services.ErrTodoNotFound
	}
	return nil
}

func setupTodoHandler() (*handlers.TodoHandler, *MockTodoService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	mockService := &MockTodoService{}
	handler := handlers.NewTodoHandler(nil, mockService)
	router := gin.New()

	// Stand-in for APIKeyAuth: a fixed authenticated user on the context.
	router.Use(func(c *gin.Context) {
		c.Set("user", &models.User{ID: 1, Username: "testuser"})
		c.Next()
	})

	return handler, mockService, router
}

func TestListTodos_Empty(t *testing.T) {
	handler, _, router := setupTodoHandler()
	router.GET("/todos", handler.ListTodos)

	req, _ := http.NewRequest("GET", "/todos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Body.String() != "[]" {
		t.Errorf("Expected empty array, got %s", w.Body.String())
	}
}

func TestCreateTodo(t *testing.T) {
	handler, _, router := setupTodoHandler()
	router.POST("/todos", handler.CreateTodo)

	body, _ := json.Marshal(map[string]string{"title": "Kup mleko"})
	req, _ := http.NewRequest("POST", "/todos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var todo models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &todo); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if todo.Title != "Kup mleko" {
		t.Errorf("Expected title 'Kup mleko', got '%s'", todo.Title)
	}

	if todo.Done {
		t.Error("Expected a fresh todo to not be done")
	}

	if todo.ID == 0 {
		t.Error("Expected a generated id")
	}
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	handler, _, router := setupTodoHandler()
	router.POST("/todos", handler.CreateTodo)

	req, _ := http.NewRequest("POST", "/todos", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdateTodo_PartialUpdate(t *testing.T) {
	handler, _, router := setupTodoHandler()
	router.PUT("/todos/:id", handler.UpdateTodo)

	req, _ := http.NewRequest("PUT", "/todos/5", bytes.NewBuffer([]byte(`{"done":true}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var todo models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &todo); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !todo.Done {
		t.Error("Expected todo to be done after update")
	}

	if todo.Title != "Test Todo" {
		t.Errorf("Expected omitted title to stay 'Test Todo', got '%s'", todo.Title)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	handler, mockService, router := setupTodoHandler()
	router.PUT("/todos/:id", handler.UpdateTodo)

	mockService.returnNotFound = true

	req, _ := http.NewRequest("PUT", "/todos/99", bytes.NewBuffer([]byte(`{"done":true}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	expected := `{"error":"Todo not found"}`
	if w.Body.String() != expected {
		t.Errorf("Expected body %s, got %s", expected, w.Body.String())
	}
}

func TestUpdateTodo_NonNumericID(t *testing.T) {
	handler, _, router := setupTodoHandler()
	router.PUT("/todos/:id", handler.UpdateTodo)

	req, _ := http.NewRequest("PUT", "/todos/abc", bytes.NewBuffer([]byte(`{"done":true}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestDeleteTodo(t *testing.T) {
	handler, _, router := setupTodoHandler()
	router.DELETE("/todos/:id", handler.DeleteTodo)

	req, _ := http.NewRequest("DELETE", "/todos/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d, got %d", http.StatusNoContent, w.Code)
	}

	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %s", w.Body.String())
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	handler, mockService, router := setupTodoHandler()
	router.DELETE("/todos/:id", handler.DeleteTodo)

	mockService.returnNotFound = true

	req, _ := http.NewRequest("DELETE", "/todos/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestListTodos_ServiceError(t *testing.T) {
	handler, mockService, router := setupTodoHandler()
	router.GET("/todos", handler.ListTodos)

	mockService.shouldReturnError = true

	req, _ := http.NewRequest("GET", "/todos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
