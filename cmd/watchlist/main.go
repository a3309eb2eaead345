// filepath: cmd/watchlist/main.go
package main

import "watchlist/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
