// Command bizlens runs the text analyses locally on a file or stdin and
// prints the same JSON the HTTP API returns.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
