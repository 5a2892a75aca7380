package cli

import (
	"github.com/spf13/cobra"
)

// runSample is the default action: insert one todo, then print every todo.
func runSample(cmd *cobra.Command, opts *RootOptions, title string) error {
	ctx := cmd.Context()

	st, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore(st, opts.logger)

	todo, err := st.Insert(ctx, title)
	if err != nil {
		return storageError("failed to insert todo", err)
	}
	opts.logger.Debug("todo inserted", "id", todo.ID)

	todos, err := st.ListAll(ctx)
	if err != nil {
		return storageError("failed to list todos", err)
	}
	opts.logger.Debug("todos listed", "count", len(todos))

	return opts.formatter(cmd).Todos(todos)
}
