package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_mecanico/internal/domain/entities"
	mock_interfaces "taller_mecanico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("invalid rut fails closed", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{
			Nombre: "Juan", Apellido: "Pérez", RUT: "12345678-9", Telefono: "912345678",
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid phone fails closed", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{
			Nombre: "Juan", Apellido: "Pérez", RUT: "12345678-5", Telefono: "812345678",
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("rut stored formatted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.RUT != "12.345.678-5" {
					t.Fatalf("expected formatted rut, got %q", c.RUT)
				}
				return c, nil
			})

		_, err := uc.Create(context.Background(), entities.Client{
			Nombre: "Juan", Apellido: "Pérez", RUT: "123456785", Telefono: "912345678",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("invalid patente", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Vehicle{Patente: "XYZ", Marca: "Toyota", Modelo: "Yaris", Anio: 2020})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("owner must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewVehicleUseCase(nil, clientRepo)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-x").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), entities.Vehicle{
			Patente: "ABCD12", Marca: "Toyota", Modelo: "Yaris", Anio: 2020, ClienteID: "cli-x",
		})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("patente stored formatted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Patente != "ABCD12" {
					t.Fatalf("expected normalized patente, got %q", v.Patente)
				}
				return v, nil
			})

		_, err := uc.Create(context.Background(), entities.Vehicle{
			Patente: "ab-cd-12", Marca: "Toyota", Modelo: "Yaris", Anio: 2020,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
