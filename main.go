// The main package for the spinneret executable.
package main

import (
	"github.com/webloom/spinneret/cmd"
)

// main is the entry point of the application. It defers all execution to the
// Cobra CLI library.
func main() {
	cmd.Execute()
}
