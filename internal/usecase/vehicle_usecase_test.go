package usecase

import (
	"context"
	"errors"
	"testing"

	"manutencao_xpto/internal/domain/entities"
	mock_interfaces "manutencao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		_, err := uc.Create(context.Background(), CreateVehicleInput{Name: "  "})
		if !errors.Is(err, ErrInvalidVehicleName) {
			t.Fatalf("expected ErrInvalidVehicleName, got %v", err)
		}
	})

	t.Run("negative cost per km", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		cost := -0.5
		_, err := uc.Create(context.Background(), CreateVehicleInput{Name: "Fiorino", CostPerKm: &cost})
		if !errors.Is(err, ErrInvalidCostPerKm) {
			t.Fatalf("expected ErrInvalidCostPerKm, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ID == "" || v.Name != "Fiorino" || v.LicensePlate != "ABC1D23" {
					t.Fatalf("unexpected vehicle: %+v", v)
				}
				return v, nil
			},
		)

		uc := NewVehicleUseCase(repo)
		cost := 0.6
		_, err := uc.Create(context.Background(), CreateVehicleInput{Name: " Fiorino ", LicensePlate: "ABC1D23", CostPerKm: &cost})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "veh-9").Return(entities.Vehicle{}, nil)

		uc := NewVehicleUseCase(repo)
		_, err := uc.Update(context.Background(), "veh-9", UpdateVehicleInput{})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("updates cost per km", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", Name: "Fiorino"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.CostPerKm == nil || *v.CostPerKm != 0.75 {
					t.Fatalf("unexpected cost per km: %+v", v.CostPerKm)
				}
				return v, nil
			},
		)

		uc := NewVehicleUseCase(repo)
		cost := 0.75
		if _, err := uc.Update(context.Background(), "veh-1", UpdateVehicleInput{CostPerKm: &cost}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
