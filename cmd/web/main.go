package main

import "refspot_backend/internal/app"

func main() {
	app.Run()
}
