package main

import "github.com/floorline/recorder-api/cmd"

// @title           Sales Floor Recorder API
// @version         1.0.0
// @description     Backend for recording and transcribing sales-floor conversations
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token ("Bearer <token>")
func main() {
	cmd.Execute()
}
