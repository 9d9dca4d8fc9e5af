package transactions

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/session"
)

type Handler struct {
	Service *Service
	Codec   session.Codec
}

func NewHandler(svc *Service, codec session.Codec) *Handler {
	if codec == nil {
		codec = session.PlainCodec{}
	}
	return &Handler{Service: svc, Codec: codec}
}

func (h *Handler) List(c *fiber.Ctx) error {
	sessionID, ok := session.FromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Service.List(userContext(c), sessionID)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	return c.JSON(listResponse{Transactions: items})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	sessionID, ok := session.FromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	t, err := h.Service.Get(userContext(c), sessionID, c.Params("id"))
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}
	return c.JSON(getResponse{Transaction: t})
}

func (h *Handler) GetSummary(c *fiber.Ctx) error {
	sessionID, ok := session.FromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	s, err := h.Service.Summary(userContext(c), sessionID)
	if err != nil {
		return fmt.Errorf("summarize transactions: %w", err)
	}
	return c.JSON(summaryResponse{Summary: s})
}

// Create never rejects for a missing session; it mints one instead.
func (h *Handler) Create(c *fiber.Ctx) error {
	var body CreateRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidf("invalid body")
	}
	if err := validateStruct(body); err != nil {
		return err
	}

	sessionID, err := session.Resolve(c, h.Codec)
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	if err := h.Service.Create(userContext(c), sessionID, body); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	c.Status(fiber.StatusCreated)
	return nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
