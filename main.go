package main

import (
	corkboard "corkboard/app"
)

func main() {
	app := corkboard.New(nil, nil)
	app.Start()
}
