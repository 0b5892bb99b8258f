package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// SupplierUseCase casos de uso del directorio de proveedores.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	settingsRepo repository.SettingsRepository
	events       ports.EventPublisher
	log          *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	settingsRepo repository.SettingsRepository,
	events ports.EventPublisher,
	log *logger.Logger,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, settingsRepo: settingsRepo, events: events, log: log}
}

// Create registra un proveedor nuevo.
func (uc *SupplierUseCase) Create(ctx context.Context, accountID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.checkCategory(accountID, in.Category); err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Category:    in.Category,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "suppliers", ports.OpInsert)
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor de la cuenta. (nil, nil) si no existe o
// pertenece a otra cuenta.
func (uc *SupplierUseCase) GetByID(accountID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.AccountID != accountID {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores de la cuenta.
func (uc *SupplierUseCase) List(accountID string) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza un proveedor (parcial).
func (uc *SupplierUseCase) Update(ctx context.Context, accountID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.AccountID != accountID {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Category != nil {
		if err := uc.checkCategory(supplier.AccountID, *in.Category); err != nil {
			return nil, err
		}
		supplier.Category = *in.Category
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	publishChange(ctx, uc.events, uc.log, supplier.AccountID, "suppliers", ports.OpUpdate)
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor. Los productos que lo referencian conservan el
// ID colgante (relación sin ownership).
func (uc *SupplierUseCase) Delete(ctx context.Context, accountID, id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.AccountID != accountID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "suppliers", ports.OpDelete)
	return nil
}

func (uc *SupplierUseCase) checkCategory(accountID, category string) error {
	settings, err := uc.settingsRepo.GetByAccount(accountID)
	if err != nil || settings == nil {
		return nil
	}
	if !settings.HasCategory(category) {
		return domain.ErrUnknownCategory
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		Category:    s.Category,
	}
}
