package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockms-api/internal/application/navigation"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
)

func names(items []navigation.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestItems_AdminVeElMenuCompleto(t *testing.T) {
	got := names(navigation.Items(entity.RoleAdmin))

	assert.Equal(t, []string{
		"Dashboard", "Products", "Categories", "Suppliers", "Orders",
		"Reports", "User Management", "Settings", "Profile",
	}, got)
}

func TestItems_AssistantNoVeAdministracion(t *testing.T) {
	got := names(navigation.Items(entity.RoleAssistant))

	assert.Equal(t, []string{
		"Dashboard", "Products", "Categories", "Suppliers", "Orders",
		"Reports", "Profile",
	}, got)
	assert.NotContains(t, got, "User Management")
	assert.NotContains(t, got, "Settings")
}

func TestItems_CashierSoloVeOperacion(t *testing.T) {
	got := names(navigation.Items(entity.RoleCashier))

	assert.Equal(t, []string{"Dashboard", "Orders", "Profile"}, got)
}

func TestItems_RolDesconocido_MenuVacio(t *testing.T) {
	assert.Empty(t, navigation.Items("SuperAdmin"))
	assert.Empty(t, navigation.Items(""))
}

// El filtrado preserva el orden relativo de la definición del menú.
func TestItems_PreservaElOrden(t *testing.T) {
	admin := names(navigation.Items(entity.RoleAdmin))
	cashier := names(navigation.Items(entity.RoleCashier))

	idx := make(map[string]int, len(admin))
	for i, n := range admin {
		idx[n] = i
	}
	for i := 1; i < len(cashier); i++ {
		assert.Less(t, idx[cashier[i-1]], idx[cashier[i]],
			"el menú del cajero debe ser una subsecuencia ordenada del completo")
	}
}
