package main

import (
	"context"

	"github.com/99minutos/eld-logs/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
