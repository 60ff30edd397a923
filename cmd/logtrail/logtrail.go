package main

import "github.com/logtrail/logtrail/internal/app"

func main() {
	app.Run()
}
