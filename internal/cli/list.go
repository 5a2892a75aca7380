package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored todo",
		Long: `Print every stored todo in ascending id order, one "<id>: <title>" line each.

Example:
  todo list
  todo list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootOpts)
		},
	}
}

func runList(cmd *cobra.Command, opts *RootOptions) error {
	ctx := cmd.Context()

	st, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore(st, opts.logger)

	todos, err := st.ListAll(ctx)
	if err != nil {
		return storageError("failed to list todos", err)
	}
	opts.logger.Debug("todos listed", "count", len(todos))

	return opts.formatter(cmd).Todos(todos)
}
