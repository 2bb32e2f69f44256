package services

import (
	"encoding/csv"
	"io"
	"strconv"

	"gorm.io/gorm"
)

type TodoStats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	NotDone int `json:"not_done"`
}

type StatsService interface {
	Stats(db *gorm.DB, userID uint) (TodoStats, error)
	ExportCSV(db *gorm.DB, userID uint, w io.Writer) error
}

type StatsServiceImpl struct {
	todos TodoService
}

func NewStatsService(todos TodoService) *StatsServiceImpl {
	return &StatsServiceImpl{todos: todos}
}

func (s *StatsServiceImpl) Stats(db *gorm.DB, userID uint) (TodoStats, error) {
	todos, err := s.todos.ListTodos(db, userID)
	if err != nil {
		return TodoStats{}, err
	}

	var stats TodoStats
	for _, t := range todos {
		stats.Total++
		if t.Done {
			stats.Done++
		}
	}
	stats.NotDone = stats.Total - stats.Done
	return stats, nil
}

// ExportCSV writes the user's todos as "id,title,done" rows. Booleans are
// rendered as true/false. Zero todos produce the header line only.
func (s *StatsServiceImpl) ExportCSV(db *gorm.DB, userID uint, w io.Writer) error {
	todos, err := s.todos.ListTodos(db, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "done"}); err != nil {
		return err
	}
	for _, t := range todos {
		record := []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Title,
			strconv.FormatBool(t.Done),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
