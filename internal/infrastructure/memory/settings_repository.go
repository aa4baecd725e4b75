package memory

import (
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración en memoria (registro único).
type SettingsRepo struct {
	mu       sync.RWMutex
	settings entity.Settings
	saved    bool
}

// NewSettingsRepo construye el repo sin configuración guardada.
func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{}
}

// Get devuelve la configuración guardada o los defaults.
func (r *SettingsRepo) Get() (entity.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.saved {
		return entity.DefaultSettings(), nil
	}
	return r.settings, nil
}

// Save persiste la configuración.
func (r *SettingsRepo) Save(settings entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	r.saved = true
	return nil
}
