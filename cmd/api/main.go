package main

import (
	_ "bond_quotation/docs"
	"bond_quotation/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bond Quotation Agent API
// @version         1.0
// @description     Conversational bond quotation agent: IRP grading, sanction screening, RAG pricing and quotation persistence on DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
