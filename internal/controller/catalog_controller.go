// FILE: internal/controller/catalog_controller.go
package controller

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{catalogService: catalogService}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("services", c.List)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListOfferings(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get services", res))
}
