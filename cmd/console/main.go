package main

import (
	"os"

	"EstateCatalog/internal/console"
	"EstateCatalog/internal/listing"
)

func main() {
	engine := listing.NewEngine()
	console.NewSession(engine, os.Stdin, os.Stdout).Run()
}
