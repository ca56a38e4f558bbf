package main

import "github.com/shopmate-vn/go-backend/internal/app"

//	@title			ShopMate API
//	@version		1.0
//	@description	Shopping list service with AI item suggestions

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	app.Run()
}
