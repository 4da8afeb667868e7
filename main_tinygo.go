//go:build tinygo

package main

import (
	"iberos/app"
	"iberos/hal"
)

func main() {
	app.Run(hal.New())
}
