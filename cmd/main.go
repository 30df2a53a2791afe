package main

import (
	"bankist/app"
	_ "bankist/docs"
)

// @title           Bankist API
// @version         1.0
// @description     Mock banking ledger: log in with username and PIN, move money, request loans and close accounts.
// @license.name   MIT
// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
