package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
	"github.com/jhoicas/stockms-api/internal/infrastructure/memory"
)

func newProduct(name, sku string, stock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:        uuid.NewString(),
		Name:      name,
		SKU:       sku,
		Price:     decimal.RequireFromString("99.99"),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProductRepo_Create_SKURepetido(t *testing.T) {
	repo := memory.NewProductRepo()
	require.NoError(t, repo.Create(newProduct("iPhone 15 Pro", "IPH15P-001", 10)))

	err := repo.Create(newProduct("Otro producto", "iph15p-001", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el SKU es único sin distinguir mayúsculas")
}

func TestProductRepo_DecrementStock(t *testing.T) {
	repo := memory.NewProductRepo()
	p := newProduct("Nike Air Max", "NAM-001", 5)
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.DecrementStock(p.ID, 3))

	stored, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Stock)
}

func TestProductRepo_DecrementStock_Insuficiente(t *testing.T) {
	repo := memory.NewProductRepo()
	p := newProduct("Samsung Galaxy S24", "SGS24-001", 2)
	require.NoError(t, repo.Create(p))

	err := repo.DecrementStock(p.ID, 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El stock no debe cambiar tras el rechazo.
	stored, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Stock)
}

func TestProductRepo_List_FiltraPorBusquedaYCategoria(t *testing.T) {
	repo := memory.NewProductRepo()
	catA, catB := uuid.NewString(), uuid.NewString()

	a := newProduct("iPhone 15 Pro", "IPH15P-001", 10)
	a.CategoryID = catA
	b := newProduct("MacBook Air M3", "MBA-M3-001", 0)
	b.CategoryID = catA
	c := newProduct("Nike Air Max", "NAM-001", 50)
	c.CategoryID = catB
	for _, p := range []*entity.Product{a, b, c} {
		require.NoError(t, repo.Create(p))
	}

	// "air" matchea MacBook Air y Nike Air Max, sin distinguir mayúsculas.
	got, err := repo.List(repository.ProductFilter{Search: "AIR"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "MacBook Air M3", got[0].Name, "ordenado por nombre")
	assert.Equal(t, "Nike Air Max", got[1].Name)

	// Búsqueda + categoría se componen.
	got, err = repo.List(repository.ProductFilter{Search: "air", CategoryID: catB})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nike Air Max", got[0].Name)
}

func TestOrderRepo_NextNumber_Consecutivo(t *testing.T) {
	repo := memory.NewOrderRepo()

	n1, err := repo.NextNumber()
	require.NoError(t, err)
	n2, err := repo.NextNumber()
	require.NoError(t, err)

	assert.Equal(t, "#ORD-001", n1)
	assert.Equal(t, "#ORD-002", n2)
}

// La "transacción" en memoria: si fn falla, órdenes y stock vuelven al estado
// previo, incluido el consecutivo reservado con NextNumber.
func TestOrderTxRunner_RevierteTrasError(t *testing.T) {
	orders := memory.NewOrderRepo()
	products := memory.NewProductRepo()
	runner := memory.NewOrderTxRunner(orders, products)

	p := newProduct("iPhone 15 Pro", "IPH15P-001", 10)
	require.NoError(t, products.Create(p))

	boom := errors.New("stock insuficiente en la segunda línea")
	err := runner.Run(context.Background(), func(o repository.OrderRepository, pr repository.ProductRepository) error {
		number, err := o.NextNumber()
		if err != nil {
			return err
		}
		if err := pr.DecrementStock(p.ID, 4); err != nil {
			return err
		}
		if err := o.Create(&entity.Order{ID: uuid.NewString(), Number: number, Status: entity.OrderPending}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// El stock descontado se repuso.
	stored, err := products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)

	// La orden creada desapareció y el consecutivo no se consumió.
	got, err := orders.List(repository.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	n, err := orders.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "#ORD-001", n)
}

func TestOrderTxRunner_CommitConserva(t *testing.T) {
	orders := memory.NewOrderRepo()
	products := memory.NewProductRepo()
	runner := memory.NewOrderTxRunner(orders, products)

	p := newProduct("Nike Air Max", "NAM-001", 50)
	require.NoError(t, products.Create(p))

	err := runner.Run(context.Background(), func(o repository.OrderRepository, pr repository.ProductRepository) error {
		if err := pr.DecrementStock(p.ID, 2); err != nil {
			return err
		}
		return o.Create(&entity.Order{ID: uuid.NewString(), Number: "#ORD-001", Status: entity.OrderPending})
	})
	require.NoError(t, err)

	stored, err := products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, stored.Stock)
	got, err := orders.List(repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSeededRepos_DatosDeDemostracion(t *testing.T) {
	repos, err := memory.NewSeededRepos()
	require.NoError(t, err)

	users, err := repos.Users.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, users, "un usuario por rol")

	// La contraseña de demo verifica contra el hash sembrado.
	admin, err := repos.Users.FindByEmail("admin@stockms.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte(memory.DemoPassword)))

	productsList, err := repos.Products.List(repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, productsList, 4)

	ordersList, err := repos.Orders.List(repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, ordersList, 5)
	assert.Equal(t, "#ORD-005", ordersList[0].Number, "la más reciente primero")

	// El consecutivo continúa después de las órdenes sembradas.
	n, err := repos.Orders.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "#ORD-006", n)
}

func TestBlacklist_VetaHastaExpiracion(t *testing.T) {
	bl := memory.NewBlacklist()
	ctx := context.Background()

	jti := uuid.NewString()
	require.NoError(t, bl.Add(ctx, jti, time.Now().Add(time.Hour)))

	revoked, err := bl.IsBlacklisted(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Un JTI expirado deja de contar como vetado.
	expired := uuid.NewString()
	require.NoError(t, bl.Add(ctx, expired, time.Now().Add(-time.Minute)))
	revoked, err = bl.IsBlacklisted(ctx, expired)
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = bl.IsBlacklisted(ctx, "jti-desconocido")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionStore_LoadInexistente(t *testing.T) {
	store := memory.NewSessionStore()

	_, err := store.Load(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
