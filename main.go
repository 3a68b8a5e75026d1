package main

import "travelrequests/internal/app"

// @title           Travel Requests API
// @version         1.0
// @description     Internal travel-request approval API: registration, login, password recovery and a role-gated request workflow.
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
