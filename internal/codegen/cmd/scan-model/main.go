// Command scan-model prints the parsed intermediate representation of a
// model bundle as JSON, followed by any validation issues on stderr.
//
// Usage: go run ./internal/codegen/cmd/scan-model <path/to/Model.xcdatamodeld>
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Alia5/modelgen/internal/codegen/scanner"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: scan-model <bundle>")
		os.Exit(2)
	}

	m, err := scanner.ScanBundle(scanner.NewOsLoader(), os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to scan model: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(output))

	for _, issue := range scanner.Validate(m) {
		fmt.Fprintln(os.Stderr, "warning:", issue)
	}
}
