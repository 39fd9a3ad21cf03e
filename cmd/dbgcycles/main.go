// Command dbgcycles counts and enumerates simple cycles of de Bruijn graphs.
package main

import "github.com/katalvlaran/dbgcycles/internal/cli"

func main() {
	cli.Execute()
}
