package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración de la app sobre PostgreSQL (fila única, id fijo 1).
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get devuelve la configuración guardada o DefaultSettings si la fila no existe.
func (r *SettingsRepo) Get() (entity.Settings, error) {
	query := `SELECT company_name, currency, low_stock_threshold, updated_at FROM settings WHERE id = 1`
	var s entity.Settings
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.CompanyName, &s.Currency, &s.LowStockThreshold, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DefaultSettings(), nil
		}
		return entity.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Save persiste la configuración (upsert sobre la fila única).
func (r *SettingsRepo) Save(settings entity.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, currency, low_stock_threshold, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			currency = EXCLUDED.currency,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		settings.CompanyName, settings.Currency, settings.LowStockThreshold, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
