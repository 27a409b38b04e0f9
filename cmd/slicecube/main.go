// Slice Cube - CLI for turning, recording and analysing slice-cube sessions.
package main

import (
	"github.com/SeamusWaldron/slicecube/internal/cli"
)

func main() {
	cli.Execute()
}
