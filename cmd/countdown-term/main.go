// Command countdown-term runs a countdown in the terminal.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
