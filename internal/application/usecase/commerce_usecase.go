package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

// CommerceUseCase CRUD de comercios.
type CommerceUseCase struct {
	repo repository.CommerceRepository
}

// NewCommerceUseCase construye el caso de uso.
func NewCommerceUseCase(repo repository.CommerceRepository) *CommerceUseCase {
	return &CommerceUseCase{repo: repo}
}

// Create crea un comercio. La razón social es única.
func (uc *CommerceUseCase) Create(ctx context.Context, in dto.CreateCommerceRequest) (*dto.CommerceResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.LegalName) == "" {
		return nil, fmt.Errorf("%w: nombre y razón social son requeridos", domain.ErrInvalidInput)
	}
	now := time.Now()
	commerce := &entity.Commerce{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		LegalName: strings.TrimSpace(in.LegalName),
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(commerce); err != nil {
		return nil, err
	}
	return toCommerceResponse(commerce), nil
}

// GetByID obtiene un comercio. ErrNotFound si no existe.
func (uc *CommerceUseCase) GetByID(ctx context.Context, id string) (*dto.CommerceResponse, error) {
	commerce, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commerce == nil {
		return nil, fmt.Errorf("%w: comercio %s", domain.ErrNotFound, id)
	}
	return toCommerceResponse(commerce), nil
}

// List lista los comercios.
func (uc *CommerceUseCase) List(ctx context.Context) ([]dto.CommerceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommerceResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCommerceResponse(c))
	}
	return items, nil
}

// Update actualiza los datos del comercio.
func (uc *CommerceUseCase) Update(ctx context.Context, id string, in dto.UpdateCommerceRequest) (*dto.CommerceResponse, error) {
	commerce, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commerce == nil {
		return nil, fmt.Errorf("%w: comercio %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		commerce.Name = strings.TrimSpace(*in.Name)
	}
	if in.LegalName != nil {
		commerce.LegalName = strings.TrimSpace(*in.LegalName)
	}
	if in.Email != nil {
		commerce.Email = *in.Email
	}
	if in.Phone != nil {
		commerce.Phone = *in.Phone
	}
	commerce.UpdatedAt = time.Now()
	if err := uc.repo.Update(commerce); err != nil {
		return nil, err
	}
	return toCommerceResponse(commerce), nil
}

// Delete elimina el comercio; sucursales vivas → ErrProtected.
func (uc *CommerceUseCase) Delete(ctx context.Context, id string) error {
	commerce, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if commerce == nil {
		return fmt.Errorf("%w: comercio %s", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toCommerceResponse(c *entity.Commerce) *dto.CommerceResponse {
	return &dto.CommerceResponse{
		ID:        c.ID,
		Name:      c.Name,
		LegalName: c.LegalName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
