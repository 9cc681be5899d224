package main

import (
	"context"
	"os"

	"ddeventwrap/internal/app"
)

func main() {
	os.Exit(app.New().Run(context.Background(), os.Args[1:]))
}
