package repository

import "github.com/jhoicas/stockms-api/internal/domain/entity"

// SettingsRepository persiste la configuración editable de la aplicación (registro único).
type SettingsRepository interface {
	// Get devuelve la configuración guardada o DefaultSettings si nunca se guardó.
	Get() (entity.Settings, error)
	Save(settings entity.Settings) error
}
