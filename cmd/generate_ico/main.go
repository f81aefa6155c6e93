package main

import (
	"fmt"
	"log"
	"os"

	"icongen/pkg/icon"
)

func main() {
	f, err := os.Create("icon.ico")
	if err != nil {
		log.Fatal("Failed to create icon.ico:", err)
	}
	if err := icon.EncodeICO(f, icon.WindowsSizes, icon.DefaultPalette()); err != nil {
		f.Close()
		log.Fatal("Failed to generate icon.ico:", err)
	}
	if err := f.Close(); err != nil {
		log.Fatal("Failed to write icon.ico:", err)
	}
	fmt.Println("Icon generated successfully: icon.ico")
}
