package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/inventory"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// InventoryHandler movimientos, existencias, recepciones y reposiciones.
type InventoryHandler struct {
	movements      *inventory.MovementUseCase
	query          *inventory.QueryUseCase
	receptions     *inventory.ReceptionUseCase
	replenishments *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	movements *inventory.MovementUseCase,
	query *inventory.QueryUseCase,
	receptions *inventory.ReceptionUseCase,
	replenishments *inventory.ReplenishmentUseCase,
) *InventoryHandler {
	return &InventoryHandler{movements: movements, query: query, receptions: receptions, replenishments: replenishments}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  IN / OUT / TRANSFER / ADJUSTMENT en una transacción con bloqueo de filas.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.movements.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "movimiento registrado", out)
}

// ListMovements godoc
// @Summary      Kardex de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Producto"
// @Param        lot_id       query  string  false  "Lote"
// @Param        location_id  query  string  false  "Ubicación origen o destino"
// @Param        type         query  string  false  "IN, OUT, TRANSFER, ADJUSTMENT"
// @Success      200  {object}  dto.Envelope
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	f := repository.MovementFilter{
		ProductID:  c.Query("product_id"),
		LotID:      c.Query("lot_id"),
		LocationID: c.Query("location_id"),
		Type:       c.Query("type"),
	}
	out, err := h.movements.List(c.UserContext(), f, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

func inventoryFilter(c *fiber.Ctx) repository.InventoryFilter {
	return repository.InventoryFilter{
		ProductID:      c.Query("product_id"),
		LotID:          c.Query("lot_id"),
		LocationID:     c.Query("location_id"),
		SubWarehouseID: c.Query("sub_warehouse_id"),
	}
}

// ListInventory godoc
// @Summary      Existencias por lote y ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id        query  string  false  "Producto"
// @Param        lot_id            query  string  false  "Lote"
// @Param        location_id       query  string  false  "Ubicación"
// @Param        sub_warehouse_id  query  string  false  "Sub-almacén"
// @Success      200  {object}  dto.Envelope
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	out, err := h.query.List(c.UserContext(), inventoryFilter(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// LowStock godoc
// @Summary      Productos bajo el stock mínimo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.query.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// Export godoc
// @Summary      Exportar existencias a Excel
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	data, err := h.query.Export(c.UserContext(), inventoryFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	filename := "inventario-" + time.Now().Format("20060102-1504") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// CreateReception godoc
// @Summary      Registrar recepción de proveedor
// @Description  Crea o reutiliza el lote, suma existencias y registra el movimiento IN en una transacción.
// @Tags         receptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceptionRequest  true  "Recepción"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/receptions [post]
func (h *InventoryHandler) CreateReception(c *fiber.Ctx) error {
	var in dto.CreateReceptionRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.receptions.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	msg := "recepción registrada"
	if out.Quarantined {
		msg = "recepción registrada; lote en cuarentena por temperatura"
	}
	return created(c, msg, out)
}

func (h *InventoryHandler) GetReception(c *fiber.Ctx) error {
	out, err := h.receptions.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

func (h *InventoryHandler) ListReceptions(c *fiber.Ctx) error {
	out, err := h.receptions.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// CreateReplenishment godoc
// @Summary      Solicitar reposición entre ubicaciones
// @Tags         replenishments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReplenishmentRequest  true  "Reposición"
// @Success      201   {object}  dto.ReplenishmentResponse
// @Router       /api/replenishments [post]
func (h *InventoryHandler) CreateReplenishment(c *fiber.Ctx) error {
	var in dto.CreateReplenishmentRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.replenishments.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "reposición creada", out)
}

func (h *InventoryHandler) GetReplenishment(c *fiber.Ctx) error {
	out, err := h.replenishments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ListReplenishments godoc
// @Summary      Listar reposiciones
// @Tags         replenishments
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending, completed, cancelled"
// @Success      200  {object}  dto.Envelope
// @Router       /api/replenishments [get]
func (h *InventoryHandler) ListReplenishments(c *fiber.Ctx) error {
	out, err := h.replenishments.List(c.UserContext(), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// CompleteReplenishment godoc
// @Summary      Completar reposición (traslado)
// @Tags         replenishments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reposición"
// @Success      200  {object}  dto.ReplenishmentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/replenishments/{id}/complete [post]
func (h *InventoryHandler) CompleteReplenishment(c *fiber.Ctx) error {
	out, err := h.replenishments.Complete(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "reposición completada", out)
}

func (h *InventoryHandler) CancelReplenishment(c *fiber.Ctx) error {
	out, err := h.replenishments.Cancel(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "reposición cancelada", out)
}
