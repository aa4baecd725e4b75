package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockms-api/internal/domain/entity"
)

// DemoPassword contraseña compartida de los usuarios de demostración.
const DemoPassword = "password123"

// Repos agrupa los repos en memoria ya sembrados con los datos de demo.
type Repos struct {
	Users      *UserRepo
	Products   *ProductRepo
	Categories *CategoryRepo
	Suppliers  *SupplierRepo
	Orders     *OrderRepo
	Settings   *SettingsRepo
	Analytics  *AnalyticsRepo
	TxRunner   *OrderTxRunner
}

// NewSeededRepos construye todos los repos en memoria con los datos de
// demostración: 3 usuarios (uno por rol), 4 categorías, 4 productos,
// 3 proveedores y 5 órdenes. La contraseña de todos es DemoPassword.
func NewSeededRepos() (*Repos, error) {
	r := &Repos{
		Users:      NewUserRepo(),
		Products:   NewProductRepo(),
		Categories: NewCategoryRepo(),
		Suppliers:  NewSupplierRepo(),
		Orders:     NewOrderRepo(),
		Settings:   NewSettingsRepo(),
	}
	r.Analytics = NewAnalyticsRepo(r.Products, r.Orders, r.Categories)
	r.TxRunner = NewOrderTxRunner(r.Orders, r.Products)

	if err := seedUsers(r.Users); err != nil {
		return nil, err
	}
	categories := seedCategories(r.Categories)
	seedProducts(r.Products, categories)
	seedSuppliers(r.Suppliers)
	seedOrders(r.Orders)
	return r, nil
}

func seedUsers(repo *UserRepo) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	users := []entity.User{
		{
			Email:     "admin@stockms.com",
			Name:      "Admin User",
			Role:      entity.RoleAdmin,
			AvatarURL: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			Email:     "assistant@stockms.com",
			Name:      "Assistant User",
			Role:      entity.RoleAssistant,
			AvatarURL: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			Email:     "cashier@stockms.com",
			Name:      "Cashier User",
			Role:      entity.RoleCashier,
			AvatarURL: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
	}
	for _, u := range users {
		u.ID = uuid.NewString()
		u.PasswordHash = string(hash)
		u.Status = "active"
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := repo.Create(&u); err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(repo *CategoryRepo) map[string]string {
	now := time.Now()
	names := map[string]string{
		"Electronics": "Phones, laptops and accessories",
		"Footwear":    "Shoes and sneakers",
		"Clothing":    "Apparel and garments",
		"Books":       "Printed and digital books",
	}
	ids := make(map[string]string, len(names))
	for name, description := range names {
		c := entity.Category{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		repo.Create(&c) //nolint:errcheck // nombres únicos por construcción
		ids[name] = c.ID
	}
	return ids
}

func seedProducts(repo *ProductRepo, categories map[string]string) {
	now := time.Now()
	products := []entity.Product{
		{Name: "iPhone 15 Pro", SKU: "IPH15P-001", CategoryID: categories["Electronics"], Price: decimal.RequireFromString("999.99"), Stock: 25},
		{Name: "Samsung Galaxy S24", SKU: "SGS24-001", CategoryID: categories["Electronics"], Price: decimal.RequireFromString("899.99"), Stock: 5},
		{Name: "MacBook Air M3", SKU: "MBA-M3-001", CategoryID: categories["Electronics"], Price: decimal.RequireFromString("1299.99"), Stock: 0},
		{Name: "Nike Air Max", SKU: "NAM-001", CategoryID: categories["Footwear"], Price: decimal.RequireFromString("129.99"), Stock: 50},
	}
	for _, p := range products {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		repo.Create(&p) //nolint:errcheck // SKUs únicos por construcción
	}
}

func seedSuppliers(repo *SupplierRepo) {
	now := time.Now()
	suppliers := []entity.Supplier{
		{Name: "TechWorld Distribution", Email: "sales@techworld.com", Phone: "+1 555-0101", Address: "450 Market St, San Francisco, CA", ProductsSupplied: 12},
		{Name: "Global Footwear Co", Email: "orders@globalfootwear.com", Phone: "+1 555-0102", Address: "88 Commerce Ave, Portland, OR", ProductsSupplied: 7},
		{Name: "Prime Apparel Ltd", Email: "contact@primeapparel.com", Phone: "+1 555-0103", Address: "12 Fashion Blvd, New York, NY", ProductsSupplied: 4},
	}
	for _, s := range suppliers {
		s.ID = uuid.NewString()
		s.Status = "active"
		s.CreatedAt = now
		s.UpdatedAt = now
		repo.Create(&s) //nolint:errcheck // memoria, nunca falla
	}
}

func seedOrders(repo *OrderRepo) {
	now := time.Now()
	orders := []struct {
		customer string
		email    string
		total    string
		items    int
		status   string
		age      time.Duration
	}{
		{"John Doe", "john.doe@example.com", "1129.98", 2, entity.OrderDelivered, 96 * time.Hour},
		{"Jane Smith", "jane.smith@example.com", "899.99", 1, entity.OrderProcessing, 72 * time.Hour},
		{"Bob Johnson", "bob.johnson@example.com", "259.98", 2, entity.OrderShipped, 48 * time.Hour},
		{"Alice Brown", "alice.brown@example.com", "1299.99", 1, entity.OrderPending, 24 * time.Hour},
		{"Charlie Wilson", "charlie.wilson@example.com", "129.99", 1, entity.OrderCancelled, 12 * time.Hour},
	}
	for _, seed := range orders {
		number, _ := repo.NextNumber()
		createdAt := now.Add(-seed.age)
		o := entity.Order{
			ID:        uuid.NewString(),
			Number:    number,
			Customer:  seed.customer,
			Email:     seed.email,
			Total:     decimal.RequireFromString(seed.total),
			Items:     seed.items,
			Status:    seed.status,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		repo.Create(&o) //nolint:errcheck // memoria, nunca falla
	}
}
