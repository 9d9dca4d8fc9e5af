package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/session"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions"
)

// Ledger is the subset of transactions.Service a statement needs.
type Ledger interface {
	List(ctx context.Context, sessionID string) ([]transactions.Transaction, error)
	Summary(ctx context.Context, sessionID string) (transactions.Summary, error)
}

type Handler struct {
	Ledger Ledger
	Now    func() time.Time
}

func NewHandler(ledger Ledger) *Handler {
	return &Handler{Ledger: ledger, Now: time.Now}
}

func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	sessionID, ok := session.FromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := c.UserContext()
	items, err := h.Ledger.List(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("statement items: %w", err)
	}
	sum, err := h.Ledger.Summary(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("statement total: %w", err)
	}

	now := h.Now()
	pdf, err := BuildStatementPDF(Statement{
		SessionID:   sessionID,
		Items:       items,
		Total:       sum.Amount,
		GeneratedAt: now,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed: "+err.Error())
	}

	filename := "statement-" + now.UTC().Format("2006-01-02") + ".pdf"
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
