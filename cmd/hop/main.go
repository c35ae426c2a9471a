// Command hop is the command-line front end for the hop BFS toolkit.
package main

import "github.com/katalvlaran/hop/internal/cli"

func main() {
	cli.Execute()
}
