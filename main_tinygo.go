//go:build tinygo

package main

import (
	"garden/app"
	"garden/hal"
)

func main() {
	app.Run(hal.New(), app.Config{})
}
