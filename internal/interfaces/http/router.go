package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/psunilk13/rmc-doctypes/internal/application/accounts"
	"github.com/psunilk13/rmc-doctypes/internal/application/auth"
	"github.com/psunilk13/rmc-doctypes/internal/application/production"
	"github.com/psunilk13/rmc-doctypes/internal/application/rates"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	RateUC       *rates.UseCase
	ProductionUC *production.UseCase
	DocketUC     *production.DocketUseCase
	Provisioner  *accounts.Provisioner
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tarifas de mezclado (protegido; alta y edición solo admin)
	rateGroup := protected.Group("/rates")
	rateHandler := NewRateHandler(deps.RateUC)
	rateGroup.Get("/", rateHandler.List)
	rateGroup.Get("/resolve", rateHandler.Resolve)
	rateGroup.Post("/", RequireRole(entity.RoleAdmin), rateHandler.Create)
	rateGroup.Put("/:id", RequireRole(entity.RoleAdmin), rateHandler.Update)

	// Lotes de producción (protegido)
	prodGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.DocketUC)
	prodGroup.Post("/batches", RequireRole(entity.RoleAdmin, entity.RolePlanta), productionHandler.Create)
	prodGroup.Get("/batches", productionHandler.List)
	prodGroup.Put("/batches/status", productionHandler.BulkUpdateStatus)
	prodGroup.Get("/batches/:id", productionHandler.GetByID)
	prodGroup.Post("/batches/:id/submit", RequireRole(entity.RoleAdmin, entity.RolePlanta), productionHandler.Submit)
	prodGroup.Put("/batches/:id/status", productionHandler.UpdateStatus)
	prodGroup.Get("/batches/:id/status-info", productionHandler.StatusInfo)
	prodGroup.Post("/batches/:id/mixing-rate", RequireRole(entity.RoleAdmin, entity.RolePlanta), productionHandler.MixingRate)
	prodGroup.Post("/batches/:id/bom-materials", RequireRole(entity.RoleAdmin, entity.RolePlanta), productionHandler.LoadBOMMaterials)
	prodGroup.Get("/batches/:id/docket", productionHandler.Docket)

	// Aprovisionamiento contable (protegido, solo admin)
	accGroup := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.Provisioner)
	accGroup.Post("/ensure", RequireRole(entity.RoleAdmin), accountHandler.EnsureAccounts)
}
