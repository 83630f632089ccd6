package main

import (
	"context"

	"abfuhrkalender/cmd/abfuhrkalender/commands"
	"abfuhrkalender/lib/osutil"
)

func main() {
	ctx, cancel := osutil.SignalContext(context.Background())
	defer cancel()
	commands.ExecuteContext(ctx)
}
