package main

import (
	"github.com/biosecret/todoapp-api/app"
	_ "github.com/biosecret/todoapp-api/docs"
)

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
