package main

import (
	"github.com/matjam/shadercache/internal/cli"
)

func main() {
	cli.Execute()
}
