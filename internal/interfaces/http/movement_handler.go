package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	ledger *inventory.RecordMovementUseCase
	alerts *inventory.StockAlertUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *inventory.RecordMovementUseCase, alerts *inventory.StockAlertUseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger, alerts: alerts}
}

// Record godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "piece_id, type (IN/OUT/TRANSFER), quantity, ubicaciones según tipo"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "stock quedaría negativo"
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.ledger.RecordMovementFromRequest(c.Context(), userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        piece_id  query  string  false  "Filtrar por pieza"
// @Param        type      query  string  false  "IN, OUT o TRANSFER"
// @Param        from      query  string  false  "Fecha inicial (RFC3339)"
// @Param        to        query  string  false  "Fecha final (RFC3339)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "rango de fechas inválido"})
	}
	list, err := h.ledger.List(c.Query("piece_id"), c.Query("type"), from, to, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(list, page))
}

// GetAlerts godoc
// @Summary      Lista de reposición
// @Description  Piezas en estado LOW o CRITICAL con cantidad sugerida de pedido
//
//	y costo estimado, ordenadas por urgencia.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/inventory/alerts [get]
func (h *MovementHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.GenerateAlertList()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.AlertListResponse{Total: len(alerts), Alerts: alerts})
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		PieceID:      m.PieceID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		CreatedBy:    m.CreatedBy,
		ProjectID:    m.ProjectID,
		RequestID:    m.RequestID,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

func toMovementListResponse(list []*entity.Movement, page dto.PageRequest) dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
