// main is the entrypoint for the reef CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/reef/cmd"
	"github.com/huangsam/reef/internal/contract"
	"github.com/huangsam/reef/internal/outwriter"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(outwriter.RenderError(contract.UserMessage(err)))
		if errors.Is(err, contract.ErrNotARepository) {
			fmt.Println("  " + contract.NotARepositoryHint)
		}
		os.Exit(1)
	}
}
