// Command gridpath runs grid path searches from the terminal, renders and
// animates their exploration, and keeps a history of past runs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the CLI with the given arguments and streams and returns the
// process exit code.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root, a := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if ferr := a.flushMetrics(); err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	return 0
}
