package main

import "alumnihub_backend/internal/app"

func main() {
	app.Run()
}
