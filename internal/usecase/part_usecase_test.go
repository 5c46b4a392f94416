package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/domain/workflow"
	mock_interfaces "taller_mecanico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartUseCase_Create(t *testing.T) {
	t.Run("duplicate sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "FLT-001").Return(entities.Part{ID: "rep-1", SKU: "FLT-001"}, nil)

		_, err := uc.Create(context.Background(), entities.Part{SKU: "FLT-001", Nombre: "Filtro de aceite", Stock: 5, PrecioUnitario: 4990})
		if !errors.Is(err, ErrPartSKUExists) {
			t.Fatalf("expected ErrPartSKUExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "FLT-001").Return(entities.Part{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Part{})).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.ID == "" {
					t.Fatal("expected generated id")
				}
				return p, nil
			})

		if _, err := uc.Create(context.Background(), entities.Part{SKU: "FLT-001", Nombre: "Filtro de aceite", Stock: 5, PrecioUnitario: 4990}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		uc := NewPartUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Part{SKU: "FLT-001", Nombre: "Filtro", Stock: -1})
		if !errors.Is(err, ErrInvalidPartField) {
			t.Fatalf("expected ErrInvalidPartField, got %v", err)
		}
	})
}

func TestPartUseCase_ListBelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPartRepository(ctrl)
	uc := NewPartUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Part{
		{ID: "a", Stock: 2, StockMinimo: 5},
		{ID: "b", Stock: 10, StockMinimo: 5},
		{ID: "c", Stock: 5, StockMinimo: 5},
	}, nil)

	low, err := uc.ListBelowMinimum(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 2 || low[0].ID != "a" || low[1].ID != "c" {
		t.Fatalf("unexpected low-stock set %+v", low)
	}
}

func TestPartUseCase_ApproveRequest(t *testing.T) {
	t.Run("approved without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Part{ID: "rep-1", Stock: 4}, nil)
		// No Update expectation: approval never writes.

		part, err := uc.ApproveRequest(context.Background(), "rep-1", 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.Stock != 4 {
			t.Fatalf("expected stock untouched, got %d", part.Stock)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Part{ID: "rep-1", Stock: 1}, nil)

		_, err := uc.ApproveRequest(context.Background(), "rep-1", 2)
		var stockErr *workflow.InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected *InsufficientStockError, got %v", err)
		}
	})
}
