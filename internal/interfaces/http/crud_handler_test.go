package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/application/usecase"
	"github.com/jhoicas/stockms-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stockms-api/internal/interfaces/http"
)

// buildCrudApp monta los handlers CRUD sobre los repos de demo, sin middleware
// de auth (aquí se prueba el mapeo de respuestas, no la autorización).
func buildCrudApp(t *testing.T) (*fiber.App, *memory.Repos) {
	t.Helper()
	repos, err := memory.NewSeededRepos()
	require.NoError(t, err)

	app := fiber.New()
	productHandler := apphttp.NewProductHandler(usecase.NewProductUseCase(repos.Products, repos.Categories, repos.Settings))
	app.Put("/products/:id", productHandler.Update)
	categoryHandler := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repos.Categories, repos.Products))
	app.Put("/categories/:id", categoryHandler.Update)
	supplierHandler := apphttp.NewSupplierHandler(usecase.NewSupplierUseCase(repos.Suppliers))
	app.Put("/suppliers/:id", supplierHandler.Update)
	orderHandler := apphttp.NewOrderHandler(usecase.NewOrderUseCase(repos.Orders, repos.TxRunner))
	app.Put("/orders/:id/status", orderHandler.UpdateStatus)
	userHandler := apphttp.NewUserHandler(usecase.NewUserUseCase(repos.Users))
	app.Put("/users/:id", userHandler.Update)
	return app, repos
}

func doPut(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Actualizar una entidad con un ID inexistente debe responder 404 NOT_FOUND,
// nunca 200 con cuerpo null.
func TestUpdate_IDInexistente_Retorna404(t *testing.T) {
	app, _ := buildCrudApp(t)
	nombre := "Nuevo Nombre"

	cases := []struct {
		name string
		path string
		body any
	}{
		{"producto", "/products/" + uuid.NewString(), dto.UpdateProductRequest{Name: &nombre}},
		{"categoría", "/categories/" + uuid.NewString(), dto.UpdateCategoryRequest{Name: &nombre}},
		{"proveedor", "/suppliers/" + uuid.NewString(), dto.UpdateSupplierRequest{Name: &nombre}},
		{"orden", "/orders/" + uuid.NewString() + "/status", dto.UpdateOrderStatusRequest{Status: "Processing"}},
		{"usuario", "/users/" + uuid.NewString(), dto.UpdateUserRequest{Name: &nombre}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doPut(t, app, tc.path, tc.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNotFound, resp.StatusCode,
				"actualizar %s inexistente debe retornar 404", tc.name)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "NOT_FOUND")
			assert.NotEqual(t, "null", string(bytes.TrimSpace(body)))
		})
	}
}

// Sanity: el mismo endpoint con un ID existente sigue respondiendo 200.
func TestUpdate_ProductoExistente_Retorna200(t *testing.T) {
	app, repos := buildCrudApp(t)

	existing, err := repos.Products.GetBySKU("IPH15P-001")
	require.NoError(t, err)
	require.NotNil(t, existing)

	nombre := "iPhone 15 Pro Max"
	resp := doPut(t, app, "/products/"+existing.ID, dto.UpdateProductRequest{Name: &nombre})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, nombre, out.Name)
	assert.Equal(t, existing.ID, out.ID)
}
