// Package navigation deriva el menú visible según el rol del usuario.
package navigation

import "github.com/jhoicas/stockms-api/internal/domain/entity"

// Item entrada del menú lateral. Roles es el conjunto de roles que la ven.
type Item struct {
	Name  string   `json:"name"`
	Path  string   `json:"path"`
	Icon  string   `json:"icon"`
	Roles []string `json:"-"`
}

var allRoles = []string{entity.RoleAdmin, entity.RoleAssistant, entity.RoleCashier}
var staffRoles = []string{entity.RoleAdmin, entity.RoleAssistant}
var adminOnly = []string{entity.RoleAdmin}

// menu definición estática y ordenada; el orden se preserva en el filtrado.
var menu = []Item{
	{Name: "Dashboard", Path: "/", Icon: "layout-dashboard", Roles: allRoles},
	{Name: "Products", Path: "/products", Icon: "package", Roles: staffRoles},
	{Name: "Categories", Path: "/categories", Icon: "folder-open", Roles: staffRoles},
	{Name: "Suppliers", Path: "/suppliers", Icon: "truck", Roles: staffRoles},
	{Name: "Orders", Path: "/orders", Icon: "shopping-cart", Roles: allRoles},
	{Name: "Reports", Path: "/reports", Icon: "bar-chart-3", Roles: staffRoles},
	{Name: "User Management", Path: "/users", Icon: "users", Roles: adminOnly},
	{Name: "Settings", Path: "/settings", Icon: "settings", Roles: adminOnly},
	{Name: "Profile", Path: "/profile", Icon: "user", Roles: allRoles},
}

// Items devuelve la subsecuencia ordenada de entradas cuyo conjunto de roles
// contiene el rol dado. Un rol desconocido no ve ninguna entrada.
func Items(role string) []Item {
	visible := make([]Item, 0, len(menu))
	for _, item := range menu {
		for _, r := range item.Roles {
			if r == role {
				visible = append(visible, item)
				break
			}
		}
	}
	return visible
}
