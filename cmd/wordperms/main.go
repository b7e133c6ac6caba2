package main

import (
	"log"

	"github.com/kestfor/WordPerms/cmd/wordperms/app"
)

func main() {
	err := app.New().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
