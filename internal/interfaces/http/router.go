package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/internal/application/auth"
	"github.com/jhoicas/wms-api/internal/application/inventory"
	"github.com/jhoicas/wms-api/internal/application/monitoring"
	"github.com/jhoicas/wms-api/internal/application/navigation"
	"github.com/jhoicas/wms-api/internal/application/usecase"
	"github.com/jhoicas/wms-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	Navigation      *navigation.Catalog
	UserUC          *usecase.UserUseCase
	RoleUC          *usecase.RoleUseCase
	SubWarehouseUC  *usecase.SubWarehouseUseCase
	LocationUC      *usecase.LocationUseCase
	ProductUC       *usecase.ProductUseCase
	LotUC           *usecase.LotUseCase
	TaskUC          *usecase.TaskUseCase
	AlertUC         *usecase.AlertUseCase
	MovementUC      *inventory.MovementUseCase
	InventoryQuery  *inventory.QueryUseCase
	ReceptionUC     *inventory.ReceptionUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	TemperatureUC   *monitoring.TemperatureUseCase
	ExpiryUC        *monitoring.ExpiryUseCase
	JWTSecret       string
}

// Atajos de capacidades por grupo de rutas.
var (
	adminOnly      = RequireRole(rbac.CapAdmin)
	supervisorUp   = RequireRole(rbac.CapSupervisor)
	operations     = RequireRole(rbac.CapSupervisor, rbac.CapOperator)
	qualityOrSuper = RequireRole(rbac.CapSupervisor, rbac.CapQuality)
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Navigation)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/me/navigation", authHandler.Navigation)

	// Usuarios y roles (admin)
	userHandler := NewUserHandler(deps.UserUC, deps.RoleUC)
	protected.Get("/roles", adminOnly, userHandler.Roles)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Sub-almacenes (lectura autenticada, escritura admin) y ubicaciones (escritura supervisor)
	whHandler := NewWarehouseHandler(deps.SubWarehouseUC, deps.LocationUC)
	sw := protected.Group("/sub-warehouses")
	sw.Get("/", whHandler.ListSubWarehouses)
	sw.Get("/:id", whHandler.GetSubWarehouse)
	sw.Post("/", adminOnly, whHandler.CreateSubWarehouse)
	sw.Put("/:id", adminOnly, whHandler.UpdateSubWarehouse)
	sw.Delete("/:id", adminOnly, whHandler.DeleteSubWarehouse)

	locations := protected.Group("/locations")
	locations.Get("/", whHandler.ListLocations)
	locations.Get("/:id", whHandler.GetLocation)
	locations.Post("/", supervisorUp, whHandler.CreateLocation)
	locations.Put("/:id", supervisorUp, whHandler.UpdateLocation)
	locations.Delete("/:id", supervisorUp, whHandler.DeleteLocation)

	// Productos y lotes
	catalog := NewCatalogHandler(deps.ProductUC, deps.LotUC)
	products := protected.Group("/products")
	products.Get("/", catalog.ListProducts)
	products.Get("/:id", catalog.GetProduct)
	products.Post("/", supervisorUp, catalog.CreateProduct)
	products.Put("/:id", supervisorUp, catalog.UpdateProduct)
	products.Delete("/:id", supervisorUp, catalog.DeleteProduct)

	lots := protected.Group("/lots")
	lots.Get("/", catalog.ListLots)
	lots.Get("/expiring", catalog.ExpiringLots)
	lots.Get("/:id", catalog.GetLot)
	lots.Get("/:id/label", catalog.LotLabel)
	lots.Post("/", supervisorUp, catalog.CreateLot)
	lots.Put("/:id", supervisorUp, catalog.UpdateLot)
	lots.Delete("/:id", supervisorUp, catalog.DeleteLot)

	// Tareas
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := protected.Group("/tasks")
	tasks.Get("/mine", taskHandler.Mine)
	tasks.Patch("/:id/status", taskHandler.UpdateStatus)
	tasks.Get("/", supervisorUp, taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Post("/", supervisorUp, taskHandler.Create)
	tasks.Put("/:id", supervisorUp, taskHandler.Update)
	tasks.Post("/:id/assign", supervisorUp, taskHandler.Assign)
	tasks.Delete("/:id", supervisorUp, taskHandler.Delete)

	// Inventario, recepciones y reposiciones
	inv := NewInventoryHandler(deps.MovementUC, deps.InventoryQuery, deps.ReceptionUC, deps.ReplenishmentUC)
	protected.Get("/inventory", inv.ListInventory)
	protected.Get("/inventory/low-stock", inv.LowStock)
	protected.Get("/inventory/export", supervisorUp, inv.Export)
	protected.Get("/movements", inv.ListMovements)
	protected.Post("/movements", operations, inv.RegisterMovement)

	receptions := protected.Group("/receptions")
	receptions.Get("/", inv.ListReceptions)
	receptions.Get("/:id", inv.GetReception)
	receptions.Post("/", operations, inv.CreateReception)

	repl := protected.Group("/replenishments")
	repl.Get("/", inv.ListReplenishments)
	repl.Get("/:id", inv.GetReplenishment)
	repl.Post("/", operations, inv.CreateReplenishment)
	repl.Post("/:id/complete", operations, inv.CompleteReplenishment)
	repl.Post("/:id/cancel", supervisorUp, inv.CancelReplenishment)

	// Temperatura y alertas
	mon := NewMonitoringHandler(deps.TemperatureUC, deps.ExpiryUC, deps.AlertUC)
	protected.Get("/temperature-readings", mon.ListTemperature)
	protected.Post("/temperature-readings", RequireRole(rbac.CapSupervisor, rbac.CapOperator, rbac.CapQuality), mon.RecordTemperature)
	protected.Get("/alerts", mon.ListAlerts)
	protected.Post("/alerts/expiry-scan", qualityOrSuper, mon.ScanExpiry)
	protected.Post("/alerts/:id/resolve", qualityOrSuper, mon.ResolveAlert)
}
