// FILE: internal/controller/subscription_controller.go
package controller

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{subscriptionService: subscriptionService}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Patch(":id", c.Update)
}

func (c *subscriptionController) List(ctx *fiber.Ctx) error {
	res, err := c.subscriptionService.ListSubscriptions(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subscriptions", res))
}

func (c *subscriptionController) Update(ctx *fiber.Ctx) error {
	subscriptionId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.subscriptionService.UpdateSubscription(ctx.Context(), currentUserId(ctx), subscriptionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription updated", res))
}
