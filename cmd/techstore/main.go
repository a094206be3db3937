package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"techstore/internal/backend"
	"techstore/internal/catalog"
	"techstore/internal/config"
	"techstore/internal/http/handlers"
	applog "techstore/internal/log"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	var sink io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			sink = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.Setup(cfg.LogLevel, cfg.LogFormat, sink)

	// Backend wiring
	client := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: 10 * time.Second})
	src := catalog.NewSource(client)
	// One fetch at startup; a failure installs the fallback catalog and
	// the storefront runs in offline mode.
	src.Load(context.Background())
	applog.Info(nil, "catalog.load", map[string]any{"status": src.Status(), "products": len(src.Products())})

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.AddFunc("brl", handlers.FormatBRL)
	engine.AddFunc("inc", func(n int) int { return n + 1 })
	engine.AddFunc("dec", func(n int) int { return n - 1 })
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo deu errado. Tente novamente.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo deu errado. Tente novamente.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Falha na verificação de segurança. Atualize a página e tente novamente."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Routes ----------
	deps := handlers.NewDeps(src, client)

	app.Get("/", deps.StoreHandler.Home)

	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)

	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Muitas tentativas. Tente novamente mais tarde."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Post("/mode", deps.AuthHandler.SwitchMode)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "backend": src.Status()})
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página não encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
