package main

import (
	"os"

	"github.com/nosytlabs/nosytlabs-site/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
