// Command workbench is a configuration-driven task runner.
package main

import (
	"os"

	"github.com/sophiekatz/workbench/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:]))
}
