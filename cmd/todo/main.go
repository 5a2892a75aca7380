// Command todo appends a todo item to a local SQLite file and prints every
// stored item.
package main

import (
	"context"
	"os"

	"github.com/roach88/todo/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
