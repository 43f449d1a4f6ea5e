package main

import (
	"context"
	"os"

	"github.com/rroethle7474/JCL2025-Roster/internal/app"
)

func main() {
	os.Exit(app.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
