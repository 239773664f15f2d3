// cubetimer - terminal speedcubing timer with scramble generation and session history.
package main

import (
	"github.com/SeamusWaldron/cubetimer/internal/cli"
)

func main() {
	cli.Execute()
}
