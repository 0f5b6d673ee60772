// Command lantern keeps a catalog of LeetCode solutions and its README index.
package main

import "github.com/mesh-intelligence/lantern/internal/cli"

func main() {
	cli.Execute()
}
