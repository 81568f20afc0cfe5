// Command smartjson reads JSON-like text typed by a person, proposes a
// corrected document when punctuation is missing, and prints the accepted
// JSON.
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
