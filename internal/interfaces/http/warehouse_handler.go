package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/usecase"
)

// WarehouseHandler sub-almacenes y ubicaciones.
type WarehouseHandler struct {
	subWarehouses *usecase.SubWarehouseUseCase
	locations     *usecase.LocationUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(sw *usecase.SubWarehouseUseCase, loc *usecase.LocationUseCase) *WarehouseHandler {
	return &WarehouseHandler{subWarehouses: sw, locations: loc}
}

// CreateSubWarehouse godoc
// @Summary      Crear sub-almacén
// @Tags         sub-warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubWarehouseRequest  true  "Datos del sub-almacén"
// @Success      201   {object}  dto.SubWarehouseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sub-warehouses [post]
func (h *WarehouseHandler) CreateSubWarehouse(c *fiber.Ctx) error {
	var in dto.CreateSubWarehouseRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.subWarehouses.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "sub-almacén creado", out)
}

// GetSubWarehouse godoc
// @Summary      Obtener sub-almacén
// @Tags         sub-warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.SubWarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sub-warehouses/{id} [get]
func (h *WarehouseHandler) GetSubWarehouse(c *fiber.Ctx) error {
	out, err := h.subWarehouses.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ListSubWarehouses godoc
// @Summary      Listar sub-almacenes
// @Tags         sub-warehouses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope
// @Router       /api/sub-warehouses [get]
func (h *WarehouseHandler) ListSubWarehouses(c *fiber.Ctx) error {
	out, err := h.subWarehouses.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// UpdateSubWarehouse godoc
// @Summary      Actualizar sub-almacén
// @Tags         sub-warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID"
// @Param        body  body  dto.UpdateSubWarehouseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubWarehouseResponse
// @Router       /api/sub-warehouses/{id} [put]
func (h *WarehouseHandler) UpdateSubWarehouse(c *fiber.Ctx) error {
	var in dto.UpdateSubWarehouseRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.subWarehouses.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "sub-almacén actualizado", out)
}

// DeleteSubWarehouse godoc
// @Summary      Eliminar sub-almacén
// @Tags         sub-warehouses
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sub-warehouses/{id} [delete]
func (h *WarehouseHandler) DeleteSubWarehouse(c *fiber.Ctx) error {
	if err := h.subWarehouses.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, "sub-almacén eliminado", nil)
}

// CreateLocation godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Datos de la ubicación"
// @Success      201   {object}  dto.LocationResponse
// @Router       /api/locations [post]
func (h *WarehouseHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.locations.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "ubicación creada", out)
}

// GetLocation godoc
// @Summary      Obtener ubicación
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.LocationResponse
// @Router       /api/locations/{id} [get]
func (h *WarehouseHandler) GetLocation(c *fiber.Ctx) error {
	out, err := h.locations.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        sub_warehouse_id  query  string  false  "Filtrar por sub-almacén"
// @Param        zone              query  string  false  "Filtrar por zona"
// @Param        limit             query  int     false  "Límite"  default(20)
// @Param        offset            query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope
// @Router       /api/locations [get]
func (h *WarehouseHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.locations.List(c.UserContext(), c.Query("sub_warehouse_id"), c.Query("zone"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// UpdateLocation godoc
// @Summary      Actualizar ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.UpdateLocationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LocationResponse
// @Router       /api/locations/{id} [put]
func (h *WarehouseHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.locations.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "ubicación actualizada", out)
}

// DeleteLocation godoc
// @Summary      Eliminar ubicación (solo sin existencias)
// @Tags         locations
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *WarehouseHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.locations.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, "ubicación eliminada", nil)
}
