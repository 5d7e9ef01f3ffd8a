// Commchar plots, summarizes and exports Laminar communication characterization results.
package main

import "github.com/cyarp/commchar/internal/cli"

func main() {
	cli.Execute()
}
