package main

import (
	"github.com/hotelops/settlement/internal/app"
	"github.com/hotelops/settlement/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
