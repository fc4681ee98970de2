package main

import (
	"context"
	"os"

	"github.com/grovetools/tzclock/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
