// Command pinboard is the CLI entry point.
package main

import "github.com/mesh-intelligence/pinboard/internal/cli"

func main() {
	cli.Execute()
}
