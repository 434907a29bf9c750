package main

import (
	"os"

	"github.com/BuzzLyutic/task-report/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
