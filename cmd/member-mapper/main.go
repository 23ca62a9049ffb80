// Package main provides the CLI entrypoint for member-mapper.
//
// member-mapper resolves member mappings between structured types:
//   - Reads type pairs, overrides and ignore lists from a YAML mapping file
//   - Takes the type model from the file or from Go packages
//   - Reports the initializer and post-construction assignments of each pair
//   - Exports the resolved assignments as a reviewable mapping file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
