// Command schemagen runs the SchemaGen MCP server and its helper commands.
package main

import (
	"github.com/schemagen-labs/schemagen-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
