package main

import (
	"fmt"
	"os"

	"github.com/teranos/measure/cmd/measure/commands"
	"github.com/teranos/measure/logger"
)

func main() {
	defer logger.Cleanup()
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
