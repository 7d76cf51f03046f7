// FILE: internal/controller/admin_controller.go
package controller

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Transactions(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	PreviewNotification(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService        service.IAdminService
	notificationService service.INotificationService
	allowlist           *serverutils.AdminAllowlist
}

func NewAdminController(
	adminService service.IAdminService,
	notificationService service.INotificationService,
	allowlist *serverutils.AdminAllowlist,
) IAdminController {
	return &adminController{
		adminService:        adminService,
		notificationService: notificationService,
		allowlist:           allowlist,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware(c.allowlist))
	h.Get("dashboard", c.Dashboard)
	h.Get("transactions", c.Transactions)
	h.Get("logs", c.Logs)
	h.Post("notifications/preview", c.PreviewNotification)
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

func (c *adminController) Transactions(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.GetTransactions(ctx.Context(), status, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}

func (c *adminController) PreviewNotification(ctx *fiber.Ctx) error {
	var req dto.NotificationPreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.notificationService.SendPreview(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Preview email sent", nil))
}
