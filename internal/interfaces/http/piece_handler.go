package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
)

// PieceHandler maneja las peticiones HTTP del registro de piezas.
type PieceHandler struct {
	uc     *inventory.PieceUseCase
	ledger *inventory.RecordMovementUseCase
}

// NewPieceHandler construye el handler.
func NewPieceHandler(uc *inventory.PieceUseCase, ledger *inventory.RecordMovementUseCase) *PieceHandler {
	return &PieceHandler{uc: uc, ledger: ledger}
}

// Create godoc
// @Summary      Dar de alta una pieza
// @Tags         pieces
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePieceRequest  true  "serial_number y name obligatorios"
// @Success      201   {object}  dto.PieceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pieces [post]
func (h *PieceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePieceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	piece, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(piece)
}

// GetByID godoc
// @Summary      Obtener pieza por ID
// @Tags         pieces
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Piece ID"
// @Success      200  {object}  dto.PieceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pieces/{id} [get]
func (h *PieceHandler) GetByID(c *fiber.Ctx) error {
	piece, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(piece)
}

// List godoc
// @Summary      Listar piezas
// @Tags         pieces
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo piezas activas"
// @Success      200  {object}  dto.PieceListResponse
// @Router       /api/pieces [get]
func (h *PieceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	onlyActive := c.QueryBool("active", true)
	list, err := h.uc.List(onlyActive, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// GetStockStatus godoc
// @Summary      Estado de stock derivado de una pieza (OK/LOW/CRITICAL)
// @Tags         pieces
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Piece ID"
// @Success      200  {object}  dto.StockStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pieces/{id}/status [get]
func (h *PieceHandler) GetStockStatus(c *fiber.Ctx) error {
	status, err := h.uc.GetStockStatus(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(status)
}

// ListMovements godoc
// @Summary      Historial de movimientos de una pieza
// @Tags         pieces
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "Piece ID"
// @Param        from  query  string  false  "Fecha inicial (RFC3339)"
// @Param        to    query  string  false  "Fecha final (RFC3339)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/pieces/{id}/movements [get]
func (h *PieceHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "rango de fechas inválido"})
	}
	list, err := h.ledger.ListByPiece(c.Params("id"), from, to, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(list, page))
}

// Deactivate godoc
// @Summary      Desactivar pieza (borrado suave)
// @Tags         pieces
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Piece ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "referenciada por solicitudes activas"
// @Router       /api/pieces/{id} [delete]
func (h *PieceHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDateRange lee from/to en RFC3339 del query string.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
