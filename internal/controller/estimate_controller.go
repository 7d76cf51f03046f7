// FILE: internal/controller/estimate_controller.go
package controller

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEstimateController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	FinalizeCheckout(ctx *fiber.Ctx) error
}

type estimateController struct {
	estimateService service.IEstimateService
	allowlist       *serverutils.AdminAllowlist
}

func NewEstimateController(estimateService service.IEstimateService, allowlist *serverutils.AdminAllowlist) IEstimateController {
	return &estimateController{
		estimateService: estimateService,
		allowlist:       allowlist,
	}
}

func (c *estimateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/estimate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", serverutils.AdminMiddleware(c.allowlist), c.Create)
	h.Delete(":id", serverutils.AdminMiddleware(c.allowlist), c.Delete)
	h.Get("", c.List)
	h.Post("checkout", c.Checkout)
	h.Post("checkout/finalize", c.FinalizeCheckout)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
}

func (c *estimateController) isAdmin(ctx *fiber.Ctx) bool {
	email, _ := ctx.Locals("user_email").(string)
	return c.allowlist.IsAdmin(email)
}

func (c *estimateController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEstimateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	adminEmail, _ := ctx.Locals("user_email").(string)
	res, err := c.estimateService.CreateEstimate(ctx.Context(), adminEmail, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Estimate created", res))
}

func (c *estimateController) List(ctx *fiber.Ctx) error {
	// Admins may narrow the list to one customer with ?userId=.
	var filterUserId *uuid.UUID
	if raw := ctx.Query("userId"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			filterUserId = &parsed
		}
	}

	res, err := c.estimateService.ListEstimates(ctx.Context(), currentUserId(ctx), c.isAdmin(ctx), filterUserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get estimates", res))
}

func (c *estimateController) Show(ctx *fiber.Ctx) error {
	estimateId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.estimateService.GetEstimate(ctx.Context(), currentUserId(ctx), c.isAdmin(ctx), estimateId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get estimate", res))
}

func (c *estimateController) Update(ctx *fiber.Ctx) error {
	estimateId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateEstimateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.estimateService.UpdateEstimate(ctx.Context(), currentUserId(ctx), c.isAdmin(ctx), estimateId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Estimate updated", res))
}

func (c *estimateController) Delete(ctx *fiber.Ctx) error {
	estimateId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.estimateService.DeleteEstimate(ctx.Context(), estimateId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Estimate deleted", nil))
}

func (c *estimateController) Checkout(ctx *fiber.Ctx) error {
	var req dto.EstimateCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.estimateService.StartEstimateCheckout(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkout session created", res))
}

func (c *estimateController) FinalizeCheckout(ctx *fiber.Ctx) error {
	var req dto.FinalizeEstimateCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.estimateService.FinalizeEstimateCheckout(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
