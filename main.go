package main

import (
	"os"

	"shelftrack/app"
)

func main() {
	os.Exit(app.CLI(os.Args[1:]))
}
