package main

import (
	"log"
	"os"

	"icongen/pkg/icon"
)

func main() {
	err := icon.GenerateSet(".", os.Stdout, icon.DefaultSet())
	if err != nil {
		log.Fatal("Failed to generate icons:", err)
	}
}
