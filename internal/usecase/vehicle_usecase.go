package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidVehicleID   = errors.New("invalid vehicle id")
	ErrInvalidVehicleName = errors.New("invalid vehicle name")
	ErrInvalidCostPerKm   = errors.New("invalid cost per km")
)

type CreateVehicleInput struct {
	Name         string
	LicensePlate string
	CostPerKm    *float64
}

type UpdateVehicleInput struct {
	Name         *string
	LicensePlate *string
	CostPerKm    *float64
}

type IVehicleUseCase interface {
	Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, id string, in UpdateVehicleInput) (entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
	now  func() time.Time
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *VehicleUseCase) Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Vehicle{}, ErrInvalidVehicleName
	}
	if in.CostPerKm != nil && *in.CostPerKm < 0 {
		return entities.Vehicle{}, ErrInvalidCostPerKm
	}

	now := u.now()
	v := entities.Vehicle{
		ID:           uuid.NewString(),
		Name:         in.Name,
		LicensePlate: strings.TrimSpace(in.LicensePlate),
		CostPerKm:    in.CostPerKm,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in UpdateVehicleInput) (entities.Vehicle, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Vehicle{}, ErrInvalidVehicleName
		}
		v.Name = name
	}
	if in.LicensePlate != nil {
		v.LicensePlate = strings.TrimSpace(*in.LicensePlate)
	}
	if in.CostPerKm != nil {
		if *in.CostPerKm < 0 {
			return entities.Vehicle{}, ErrInvalidCostPerKm
		}
		v.CostPerKm = in.CostPerKm
	}

	v.UpdatedAt = u.now()
	return u.repo.Save(ctx, v)
}
