package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockms-api/internal/application/navigation"
)

// NavigationHandler menú lateral filtrado por rol.
type NavigationHandler struct{}

// NewNavigationHandler construye el handler de navegación.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Menu devuelve las entradas visibles para el rol del token, en orden.
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": navigation.Items(GetRole(c))})
}
