package router

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/reports"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/session"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions"
)

type Router struct {
	TransactionsHandler *transactions.Handler
	ReportsHandler      *reports.Handler
	Codec               session.Codec
	WriteLimiter        fiber.Handler
	CORSOrigin          string
	Logger              *zap.Logger
}

// NewApp builds the fiber app with the shared error handler and middleware
// and registers every route.
func (r *Router) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(r.Logger),
	})

	app.Use(CorsMiddleware(r.CORSOrigin))
	app.Use(RequestLogger(r.Logger))

	r.RegisterRoutes(app)
	return app
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	codec := r.Codec
	if codec == nil {
		codec = session.PlainCodec{}
	}
	guard := session.Guard(codec)

	g := app.Group("/transactions")

	if r.TransactionsHandler != nil {
		create := []fiber.Handler{}
		if r.WriteLimiter != nil {
			create = append(create, r.WriteLimiter)
		}
		create = append(create, r.TransactionsHandler.Create)

		g.Post("/", create...)
		g.Get("/", guard, r.TransactionsHandler.List)
		// Static paths go before /:id so they are not captured as ids.
		g.Get("/summary", guard, r.TransactionsHandler.GetSummary)
	}

	if r.ReportsHandler != nil {
		g.Get("/statement", guard, r.ReportsHandler.StatementPDF)
	}

	if r.TransactionsHandler != nil {
		g.Get("/:id", guard, r.TransactionsHandler.Get)
	}
}
