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

// CategoryUseCase CRUD de categorías de producto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría con nombre único no vacío.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es requerido", domain.ErrInvalidInput)
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría. ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update actualiza nombre o descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre de la categoría no puede quedar vacío", domain.ErrInvalidInput)
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría; productos que la referencien → ErrProtected.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
