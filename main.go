package main

import (
	"fmt"
	"os"

	"github.com/audiobiblio/tagsuggest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
