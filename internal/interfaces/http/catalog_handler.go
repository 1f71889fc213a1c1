package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/usecase"
)

// CatalogHandler productos y lotes.
type CatalogHandler struct {
	products *usecase.ProductUseCase
	lots     *usecase.LotUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *usecase.ProductUseCase, lots *usecase.LotUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, lots: lots}
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.products.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "producto creado", out)
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.products.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "SKU, código de barras o parte del nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.products.List(c.UserContext(), c.Query("q"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.products.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "producto actualizado", out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, "producto eliminado", nil)
}

// CreateLot godoc
// @Summary      Crear lote
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotResponse
// @Router       /api/lots [post]
func (h *CatalogHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.lots.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "lote creado", out)
}

func (h *CatalogHandler) GetLot(c *fiber.Ctx) error {
	out, err := h.lots.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ListLots godoc
// @Summary      Listar lotes
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.Envelope
// @Router       /api/lots [get]
func (h *CatalogHandler) ListLots(c *fiber.Ctx) error {
	out, err := h.lots.List(c.UserContext(), c.Query("product_id"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ExpiringLots godoc
// @Summary      Lotes por vencer
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200   {array}  dto.LotResponse
// @Router       /api/lots/expiring [get]
func (h *CatalogHandler) ExpiringLots(c *fiber.Ctx) error {
	out, err := h.lots.Expiring(c.UserContext(), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

func (h *CatalogHandler) UpdateLot(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.lots.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "lote actualizado", out)
}

func (h *CatalogHandler) DeleteLot(c *fiber.Ctx) error {
	if err := h.lots.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, "lote eliminado", nil)
}

// LotLabel godoc
// @Summary      Etiqueta PDF del lote (Code128 + QR)
// @Tags         lots
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/label [get]
func (h *CatalogHandler) LotLabel(c *fiber.Ctx) error {
	pdf, filename, err := h.lots.Label(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
