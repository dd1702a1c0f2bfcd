// Command descq resolves switch descriptors into query directives.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/descq/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands report their own errors; anything else (bad flags,
		// wrong argument count) is printed here.
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "descq:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
