package main

import (
	_ "payhere_service/docs"
	"payhere_service/internal/adapter/http/routes"
	"payhere_service/internal/infrastructure/config"
)

// @title           PayHere Payment Service API
// @version         1.0
// @description     PayHere payment provider: checkout signing, notify_url callbacks and payment sessions backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	config.LoadEnvFile()
	routes.Run()
}
