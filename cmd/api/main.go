package main

import (
	_ "repairhub/docs"
	"repairhub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Repairhub Storefront API
// @version         1.0
// @description     Orders, repair bookings with quote negotiation, and single-use vouchers, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Shared staff secret for admin-only operations.

func main() {
	routes.Run()
}
