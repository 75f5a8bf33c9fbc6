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

// CustomerUseCase CRUD de clientes. El RUT no es único: pueden existir
// registros repetidos para casos especiales (boletas a nombre de empresa).
type CustomerUseCase struct {
	customers repository.CustomerRepository
	locations repository.LocationRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, locations repository.LocationRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, locations: locations}
}

// Create crea un cliente en una comuna existente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.RUT) == "" || strings.TrimSpace(in.FirstNames) == "" {
		return nil, fmt.Errorf("%w: rut y nombres son requeridos", domain.ErrInvalidInput)
	}
	if in.CommuneID != "" {
		commune, err := uc.locations.GetCommune(in.CommuneID)
		if err != nil {
			return nil, err
		}
		if commune == nil {
			return nil, fmt.Errorf("%w: la comuna indicada no existe", domain.ErrInvalidInput)
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		RUT:          strings.TrimSpace(in.RUT),
		FirstNames:   strings.TrimSpace(in.FirstNames),
		PaternalName: strings.TrimSpace(in.PaternalName),
		MaternalName: strings.TrimSpace(in.MaternalName),
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		CommuneID:    in.CommuneID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente. ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con búsqueda parcial y paginación.
func (uc *CustomerUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.Normalize()
	offset := (page.Page - 1) * page.Items
	list, err := uc.customers.List(search, page.Items, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Items: page.Items},
	}, nil
}

// Update actualiza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	if in.RUT != nil {
		customer.RUT = strings.TrimSpace(*in.RUT)
	}
	if in.FirstNames != nil {
		customer.FirstNames = strings.TrimSpace(*in.FirstNames)
	}
	if in.PaternalName != nil {
		customer.PaternalName = strings.TrimSpace(*in.PaternalName)
	}
	if in.MaternalName != nil {
		customer.MaternalName = strings.TrimSpace(*in.MaternalName)
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.CommuneID != nil {
		if *in.CommuneID != "" {
			commune, err := uc.locations.GetCommune(*in.CommuneID)
			if err != nil {
				return nil, err
			}
			if commune == nil {
				return nil, fmt.Errorf("%w: la comuna indicada no existe", domain.ErrInvalidInput)
			}
		}
		customer.CommuneID = *in.CommuneID
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return uc.customers.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		RUT:          c.RUT,
		FirstNames:   c.FirstNames,
		PaternalName: c.PaternalName,
		MaternalName: c.MaternalName,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		CommuneID:    c.CommuneID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
