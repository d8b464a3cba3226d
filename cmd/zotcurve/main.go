// zotcurve queries a grades dataset from the terminal.
//
// Usage:
//
//	zotcurve search --department=COMPSCI --course-number=100-199 [--stats]
//	zotcurve show <id>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
