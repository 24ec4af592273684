package main

import (
	"fmt"
	"os"

	"habitkeep/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(nil)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
