package main

import (
	"github.com/happydoodle/core/internal/app"
	"github.com/happydoodle/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
