// FILE: internal/controller/checkout_controller.go
package controller

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Finalize(ctx *fiber.Ctx) error
}

type checkoutController struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutController(checkoutService service.ICheckoutService) ICheckoutController {
	return &checkoutController{checkoutService: checkoutService}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkout/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("session", c.Start)
	h.Post("finalize", c.Finalize)
}

func (c *checkoutController) Start(ctx *fiber.Ctx) error {
	var req dto.StartCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.checkoutService.StartCheckout(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkout session created", res))
}

func (c *checkoutController) Finalize(ctx *fiber.Ctx) error {
	var req dto.FinalizeCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.FinalizeCheckout(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
