// FILE: internal/controller/quote_controller.go
package controller

import (
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const quoteTokenCookie = "quote_token"

type IQuoteController interface {
	RegisterRoutes(r fiber.Router)
	GetDraft(ctx *fiber.Ctx) error
	SaveDraft(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type quoteController struct {
	quoteService service.IQuoteService
}

func NewQuoteController(quoteService service.IQuoteService) IQuoteController {
	return &quoteController{quoteService: quoteService}
}

func (c *quoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quote/v1")
	h.Get("draft", c.GetDraft)
	h.Put("draft", c.SaveDraft)
	h.Post("submit", c.Submit)
}

// quoteToken reads the visitor's token cookie, minting one on first contact.
func quoteToken(ctx *fiber.Ctx) string {
	token := ctx.Cookies(quoteTokenCookie)
	if token == "" {
		token = uuid.New().String()
		ctx.Cookie(&fiber.Cookie{
			Name:     quoteTokenCookie,
			Value:    token,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return token
}

func (c *quoteController) GetDraft(ctx *fiber.Ctx) error {
	res, err := c.quoteService.GetDraft(ctx.Context(), quoteToken(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get draft", res))
}

func (c *quoteController) SaveDraft(ctx *fiber.Ctx) error {
	var req dto.QuoteDraft
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.quoteService.SaveDraft(ctx.Context(), quoteToken(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Draft saved", nil))
}

func (c *quoteController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitQuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.quoteService.Submit(ctx.Context(), quoteToken(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Quote request received. We'll be in touch shortly.", nil))
}
