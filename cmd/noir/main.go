package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// fatal reports a failed command on stderr and exits non-zero. Deferred
// calls do not run, so everything written so far must already be on disk.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "noir: %s: %v\n", msg, err)
	os.Exit(1)
}
