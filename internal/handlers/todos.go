package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todo-service/backend/internal/middleware"
	"todo-service/backend/internal/models"
	"todo-service/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TodoHandler struct {
	db          *gorm.DB
	todoService services.TodoService
}

func NewTodoHandler(db *gorm.DB, todoService services.TodoService) *TodoHandler {
	return &TodoHandler{db: db, todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	todos, err := h.todoService.ListTodos(h.db, user.ID)
	if err != nil {
		handleTodoError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	// Title is required by the schema but deliberately not trimmed or
	// otherwise validated beyond presence.
	var todoInput struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&todoInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoService.CreateTodo(h.db, user.ID, todoInput.Title)
	if err != nil {
		handleTodoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	todoID, err := parseTodoID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	var update services.TodoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoService.UpdateTodo(h.db, user.ID, todoID, update)
	if err != nil {
		handleTodoError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	todoID, err := parseTodoID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	if err := h.todoService.DeleteTodo(h.db, user.ID, todoID); err != nil {
		handleTodoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}
	return user, true
}

// parseTodoID rejects non-numeric ids; callers answer with the same 404 a
// missing todo gets.
func parseTodoID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func handleTodoError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Todo not found",
		})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to process todo request",
		})
	}
}
