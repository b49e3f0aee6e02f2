package main

import (
	"fmt"
	"os"

	"github.com/wgdzlh/irisprep/log"
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
