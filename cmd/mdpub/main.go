package main

import (
	"context"
	"fmt"
	"os"

	"github.com/open-cli-collective/mdpub/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
