package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"techstore/internal/catalog"
	"techstore/internal/log"
)

// CartHandler dispatches cart intents into the session's cart store.
// Cart operations never fail; a bad product id simply changes nothing.
type CartHandler struct {
	Catalog  *catalog.Source
	Sessions *Registry
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID := c.FormValue("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, ok := h.Catalog.Find(productID)
	if !ok {
		log.Security(c, "cart.add.unknown_product", map[string]any{"product": productID})
		return c.Redirect("/")
	}
	h.Sessions.Get(sid).Cart.Add(p)
	log.Info(c, "cart.add", map[string]any{"product": productID})
	return c.Redirect("/")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID := c.FormValue("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	// Non-numeric input coerces to 0, which removes the line.
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		qty = 0
	}
	h.Sessions.Get(sid).Cart.SetQuantity(productID, qty)
	return c.Redirect("/")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID := c.FormValue("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	h.Sessions.Get(sid).Cart.Remove(productID)
	return c.Redirect("/")
}
