// Command keycase rewrites JSON document keys between snake_case and camelCase.
//
//	keycase -direction camel|snake [-words] [-in path] [-out path] [-debug]
package main

import (
	"context"
	"flag"
	"os"

	"github.com/viant/keycase/internal/platform/config"
	"github.com/viant/keycase/internal/tools/rekey"
)

func main() {
	cfg, err := rekey.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx := rekey.LogContext(context.Background(), cfg, os.Stderr)
	if err := rekey.Execute(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("keycase: %v", err)
	}
}
