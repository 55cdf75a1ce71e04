package main

import (
	"os"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/commands"
)

// @title CareWave ERP Accounting API
// @version 1.0
// @description Double-entry ledger, financial statements, budgets, equity and monthly KPIs.

// @host localhost:8080
// @BasePath /api/v1/accounting

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
