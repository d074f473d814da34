package main

import (
	"os"

	"github.com/leetcoder-bot/leetcoder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
