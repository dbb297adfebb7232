package main

import (
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/cli"
)

func main() {
	cli.Execute()
}
