// Command clothing-schema describes, validates, renders and authors clothing
// item documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execRootCmd(ctx, os.Args[1:], newStreams())
	stop()
	if err != nil {
		if !errors.Is(err, errInvalidDocuments) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
