package main

import "github.com/accessdesk/api/cmd"

// @title Access Request API
// @version 1.0
// @description Submit, review and audit application access requests.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
