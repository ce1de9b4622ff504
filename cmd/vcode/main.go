// Command vcode is the V-Code interpreter's command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/PaoloGonzalez776/V-Code/cmd/vcode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
