package store

import (
	"context"
)

// Todo is a stored todo item. ID is assigned by the store on insert and never
// changes afterwards.
type Todo struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
}

// Insert appends a todo with the given title and returns it with its
// assigned ID. The title is stored verbatim; empty titles are allowed.
func (s *Store) Insert(ctx context.Context, title string) (Todo, error) {
	todo := Todo{Title: title}

	result, err := s.db.NamedExecContext(ctx, `
		INSERT INTO todos (title) VALUES (:title)
	`, todo)
	if err != nil {
		return Todo{}, unavailable("insert todo", err)
	}

	todo.ID, err = result.LastInsertId()
	if err != nil {
		return Todo{}, unavailable("insert todo: last insert id", err)
	}

	return todo, nil
}

// ListAll returns every stored todo ordered by ascending ID.
//
// Returns an empty slice (not nil) if the store holds no todos.
func (s *Store) ListAll(ctx context.Context) ([]Todo, error) {
	todos := []Todo{}
	err := s.db.SelectContext(ctx, &todos, `
		SELECT id, title
		FROM todos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, unavailable("list todos", err)
	}
	return todos, nil
}
