package main

import "github.com/DRSN-tech/pos-backend/internal/app"

//	@title			POS Backend API
//	@version		1.0
//	@description	Каталог товаров, оформление продаж и отчётность магазина

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	app.Run()
}
