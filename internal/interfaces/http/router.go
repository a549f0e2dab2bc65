package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/notification"
	"github.com/tu-usuario/almacen-api/internal/application/workflow"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PieceUC        *inventory.PieceUseCase
	RecordMovement *inventory.RecordMovementUseCase
	StockAlerts    *inventory.StockAlertUseCase
	RequestUC      *workflow.RequestUseCase
	NotificationUC *notification.UseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
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

	// Pieces (protegido; alta y baja solo almacén)
	pieces := protected.Group("/pieces")
	pieceHandler := NewPieceHandler(deps.PieceUC, deps.RecordMovement)
	pieces.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), pieceHandler.Create)
	pieces.Get("/", pieceHandler.List)
	pieces.Get("/:id", pieceHandler.GetByID)
	pieces.Get("/:id/status", pieceHandler.GetStockStatus)
	pieces.Get("/:id/movements", pieceHandler.ListMovements)
	pieces.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), pieceHandler.Deactivate)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.StockAlerts)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), movementHandler.Record)
	invGroup.Get("/movements", movementHandler.List)
	invGroup.Get("/alerts", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), movementHandler.GetAlerts)

	// Requests (protegido; cualquier rol crea, el almacén resuelve)
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Post("/:id/transition", requestHandler.Transition)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/unread", notificationHandler.ListUnread)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
}
