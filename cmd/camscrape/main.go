package main

import (
	"context"

	"camscrape/cmd/camscrape/commands"
	"camscrape/lib/serviceutil"
	"camscrape/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "camscrape")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
