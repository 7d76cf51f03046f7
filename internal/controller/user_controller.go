// FILE: internal/controller/user_controller.go
package controller

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ListAddresses(ctx *fiber.Ctx) error
	CreateAddress(ctx *fiber.Ctx) error
	UpdateAddress(ctx *fiber.Ctx) error
	DeleteAddress(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{userService: userService}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("me", c.Me)
	h.Patch("me", c.UpdateProfile)
	h.Get("addresses", c.ListAddresses)
	h.Post("addresses", c.CreateAddress)
	h.Put("addresses/:id", c.UpdateAddress)
	h.Delete("addresses/:id", c.DeleteAddress)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	res, err := c.userService.GetProfile(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) ListAddresses(ctx *fiber.Ctx) error {
	res, err := c.userService.ListAddresses(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get addresses", res))
}

func (c *userController) CreateAddress(ctx *fiber.Ctx) error {
	var req dto.AddressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.CreateAddress(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Address created", res))
}

func (c *userController) UpdateAddress(ctx *fiber.Ctx) error {
	addressId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.AddressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateAddress(ctx.Context(), currentUserId(ctx), addressId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Address updated", res))
}

func (c *userController) DeleteAddress(ctx *fiber.Ctx) error {
	addressId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.userService.DeleteAddress(ctx.Context(), currentUserId(ctx), addressId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Address deleted", nil))
}
