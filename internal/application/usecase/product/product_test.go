package product

import (
	"context"
	"errors"
	"testing"

	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/infra/db/dbtest"
	"github.com/apptask/backend/internal/integration/persistence"
)

func TestCreateProductUseCase(t *testing.T) {
	db := dbtest.Open(t)
	categories := persistence.NewCategoryRepository(db)
	products := persistence.NewProductRepository(db)
	ctx := context.Background()

	active := entity.NewCategory("Active", nil, 1)
	trashed := entity.NewCategory("Trashed", nil, 2)
	for _, c := range []*entity.Category{active, trashed} {
		if err := categories.Create(ctx, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := categories.SoftDelete(ctx, trashed.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	createProduct := NewCreateProductUseCase(products, categories)

	tests := []struct {
		name       string
		categoryID int64
		wantErr    error
	}{
		{name: "active category", categoryID: active.ID},
		{name: "deleted category", categoryID: trashed.ID, wantErr: domainerror.ErrCategoryNotFound},
		{name: "unknown category", categoryID: 555, wantErr: domainerror.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := createProduct.Execute(ctx, CreateProductInput{Name: "Pen", Count: 12, CategoryID: tt.categoryID})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := NewGetProductUseCase(products).Execute(ctx, GetProductInput{ProductID: out.ID})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Product.Name != "Pen" || got.Product.Count != 12 || got.Product.CategoryID != tt.categoryID {
				t.Errorf("unexpected product: %+v", got.Product)
			}
		})
	}
}

func TestUpdateAndDeleteProductUseCase(t *testing.T) {
	db := dbtest.Open(t)
	categories := persistence.NewCategoryRepository(db)
	products := persistence.NewProductRepository(db)
	ctx := context.Background()

	category := entity.NewCategory("Office", nil, 1)
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created, err := NewCreateProductUseCase(products, categories).Execute(ctx, CreateProductInput{Name: "Stapler", Count: 1, CategoryID: category.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := int64(40)
	out, err := NewUpdateProductUseCase(products).Execute(ctx, UpdateProductInput{ProductID: created.ID, Count: &count})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Product.Name != "Stapler" || out.Product.Count != 40 {
		t.Errorf("unexpected product after update: %+v", out.Product)
	}

	if err := NewDeleteProductUseCase(products).Execute(ctx, DeleteProductInput{ProductID: created.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewUpdateProductUseCase(products).Execute(ctx, UpdateProductInput{ProductID: created.ID, Count: &count})
	if !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	page, err := NewListProductsUseCase(products).Execute(ctx, ListProductsInput{Page: entity.PageRequest{Size: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page.TotalElements != 0 {
		t.Errorf("expected no active products, got %d", page.Page.TotalElements)
	}
}
