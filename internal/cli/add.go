package cli

import (
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Append a todo",
		Long: `Append a todo with the given title and print it as "<id>: <title>".

The title is stored verbatim and may be empty.

Example:
  todo add "Buy milk"
  todo add "" --db /tmp/todos.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, rootOpts, args[0])
		},
	}
}

func runAdd(cmd *cobra.Command, opts *RootOptions, title string) error {
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

	return opts.formatter(cmd).Todo(todo)
}
