package main

import (
	"embed"

	"github.com/Pankaj-Bori/mybank-management-system/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
