package usecase

import (
	"time"

	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración (solo Admin).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente (defaults si nunca se guardó).
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CompanyName:       settings.CompanyName,
		Currency:          settings.Currency,
		LowStockThreshold: settings.LowStockThreshold,
		UpdatedAt:         settings.UpdatedAt,
	}, nil
}

// Update mezcla los campos presentes y persiste.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.CompanyName != nil {
		settings.CompanyName = *in.CompanyName
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}
	if in.LowStockThreshold != nil {
		settings.LowStockThreshold = *in.LowStockThreshold
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CompanyName:       settings.CompanyName,
		Currency:          settings.Currency,
		LowStockThreshold: settings.LowStockThreshold,
		UpdatedAt:         settings.UpdatedAt,
	}, nil
}
