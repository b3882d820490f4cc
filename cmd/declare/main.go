// Command declare loads a declare.yaml manifest and inspects or constructs
// the types it declares.
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/go-drift/declare/cmd/declare/cmd"
	"github.com/go-drift/declare/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	code = 2
	defer errors.Recover("declare")

	if err := cmd.Execute(); err != nil {
		var de *errors.DeclareError
		if stderrors.As(err, &de) {
			errors.Report(de)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
