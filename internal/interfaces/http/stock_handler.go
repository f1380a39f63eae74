package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jortega/stock-ledger-api/internal/application/dto"
	"github.com/jortega/stock-ledger-api/internal/application/stock"
	"github.com/jortega/stock-ledger-api/internal/domain/entity"
)

// StockHandler maneja las operaciones de stock y las consultas del libro de movimientos.
type StockHandler struct {
	ops     *stock.OperationUseCase
	queries *stock.MovementQueries
}

// NewStockHandler construye el handler.
func NewStockHandler(ops *stock.OperationUseCase, queries *stock.MovementQueries) *StockHandler {
	return &StockHandler{ops: ops, queries: queries}
}

// Receipt godoc
// @Summary      Registrar entrada de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "product_id, quantity (delta positivo), reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/receipt [post]
func (h *StockHandler) Receipt(c *fiber.Ctx) error {
	return h.operate(c, entity.MovementTypeRECEIPT)
}

// Issue godoc
// @Summary      Registrar salida de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "product_id, quantity (delta positivo), reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/issue [post]
func (h *StockHandler) Issue(c *fiber.Ctx) error {
	return h.operate(c, entity.MovementTypeISSUE)
}

// Adjustment godoc
// @Summary      Ajustar stock a una cantidad absoluta
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "product_id, quantity (objetivo absoluto), reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/adjustment [post]
func (h *StockHandler) Adjustment(c *fiber.Ctx) error {
	return h.operate(c, entity.MovementTypeADJUSTMENT)
}

func (h *StockHandler) operate(c *fiber.Ctx, movType string) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id requerido"})
	}

	var mov *entity.StockMovement
	var err error
	switch movType {
	case entity.MovementTypeRECEIPT:
		mov, err = h.ops.Receipt(c.Context(), in.ProductID, in.Quantity, in.Reason)
	case entity.MovementTypeISSUE:
		mov, err = h.ops.Issue(c.Context(), in.ProductID, in.Quantity, in.Reason)
	default:
		mov, err = h.ops.Adjustment(c.Context(), in.ProductID, in.Quantity, in.Reason)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementToResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        limit   query  int  false  "Máximo de resultados"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	list, err := h.queries.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementsToResponse(list))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.queries.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementToResponse(mov))
}

// ListByProduct godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/product/{productId} [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	page := parsePage(c)
	list, err := h.queries.ListByProduct(c.Params("productId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementsToResponse(list))
}

// ListByType godoc
// @Summary      Listar movimientos por tipo
// @Tags         movements
// @Produce      json
// @Param        type  path  string  true  "RECEIPT | ISSUE | ADJUSTMENT"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/type/{type} [get]
func (h *StockHandler) ListByType(c *fiber.Ctx) error {
	page := parsePage(c)
	list, err := h.queries.ListByType(c.Params("type"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementsToResponse(list))
}

// ListByPeriod godoc
// @Summary      Listar movimientos en un rango de fechas
// @Tags         movements
// @Produce      json
// @Param        from  query  string  true  "RFC3339, inclusive"
// @Param        to    query  string  true  "RFC3339, inclusive"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/period [get]
func (h *StockHandler) ListByPeriod(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}
	page := parsePage(c)
	list, err := h.queries.ListByPeriod(from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementsToResponse(list))
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	return page
}
