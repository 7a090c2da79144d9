package main

import (
	"os"

	"github.com/sportsbot/statcache/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
