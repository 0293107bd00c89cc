package main

import (
	"github.com/colinlord/ironman-results/internal/cli"
)

func main() {
	cli.Execute()
}
