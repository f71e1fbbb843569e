package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/mojochao/j2render/internal/cli"
	"github.com/mojochao/j2render/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "J2RENDER",
		Section: "1",
		Source:  "j2render " + version.Version,
		Manual:  "j2render manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
