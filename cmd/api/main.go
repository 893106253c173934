package main

import (
	_ "portal_pedidos/docs"
	"portal_pedidos/internal/commands"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Portal Pedidos Ledger API
// @version         1.0
// @description     Order lifecycle and installment ledger backed by DynamoDB or PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	commands.Execute()
}
