package main

import (
	"os"

	"github.com/mojochao/j2render/internal/cli"
	"github.com/mojochao/j2render/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := cli.Execute(rootCmd); err != nil {
		ui.NewErrorPrinter(os.Stderr, ui.FormatAuto).Print(err)
		os.Exit(1)
	}
}
