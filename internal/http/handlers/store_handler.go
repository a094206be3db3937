package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techstore/internal/catalog"
)

// StoreHandler renders the single-page storefront: catalog on the left,
// client area and cart on the right.
type StoreHandler struct {
	Catalog  *catalog.Source
	Sessions *Registry
}

func (h *StoreHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)
	st := h.Sessions.Get(sid)
	return render(c, "home", fiber.Map{
		"Products": h.Catalog.Products(),
		"Offline":  h.Catalog.Status() == catalog.StatusOffline,
		"Cart":     st.Cart.Lines(),
		"Total":    st.Cart.Total(),
		"User":     st.Session.User(),
		"Mode":     st.Session.Mode(),
		"Form":     st.Session.Form(),
		"Msg":      st.Session.Feedback(),
	})
}
