package main

import (
	"os"

	"github.com/cms-api/cms-api/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
