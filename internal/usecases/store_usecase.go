package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/pkg/utils"
)

// StoreUsecase handles the merch store business logic
type StoreUsecase struct {
	uowFactory repositories.UnitOfWorkFactory
}

// Purchase is the receipt returned from a completed order.
type Purchase struct {
	Product    *entities.Product `json:"product"`
	Quantity   int               `json:"quantity"`
	TotalCents int64             `json:"totalCents"`
}

// NewStoreUsecase creates a new store usecase
func NewStoreUsecase(uowFactory repositories.UnitOfWorkFactory) *StoreUsecase {
	return &StoreUsecase{uowFactory: uowFactory}
}

// CreateProduct adds a product to the store catalogue.
func (u *StoreUsecase) CreateProduct(ctx context.Context, input *entities.CreateProductInput) (*entities.Product, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	product := &entities.Product{
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		Description: null.NewString(input.Description, input.Description != ""),
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
		IsActive:    true,
	}

	err := uow.Products().Create(ctx, product)
	// On a slug collision retry with a numeric suffix before giving up.
	for n := 2; errors.Is(err, domainerrors.ErrConflict) && n <= 5; n++ {
		product.Slug = utils.SlugifyWithSuffix(input.Name, n)
		err = uow.Products().Create(ctx, product)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct edits catalogue data of an existing product.
func (u *StoreUsecase) UpdateProduct(ctx context.Context, product *entities.Product) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Products().Update(ctx, product)
}

// Purchase decrements stock transactionally. An order that would drain stock
// below zero fails without side effects.
func (u *StoreUsecase) Purchase(ctx context.Context, productID uint, quantity int) (*Purchase, error) {
	if quantity < 1 {
		return nil, domainerrors.NewError("quantity must be positive", domainerrors.ErrInvalidInput)
	}

	uow := u.uowFactory.New()
	defer uow.Close()

	var receipt *Purchase
	err := uow.Execute(ctx, func(ctx context.Context) error {
		product, err := uow.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if !product.IsActive {
			return domainerrors.NewError("product is not for sale", domainerrors.ErrInvalidInput)
		}

		if err := uow.Products().AdjustStock(ctx, productID, -quantity); err != nil {
			return err
		}

		product.Stock -= quantity
		receipt = &Purchase{
			Product:    product,
			Quantity:   quantity,
			TotalCents: product.PriceCents * int64(quantity),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// ListActive returns products currently for sale.
func (u *StoreUsecase) ListActive(ctx context.Context) ([]*entities.Product, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Products().ListActive(ctx)
}

// GetBySlug returns one product by its slug.
func (u *StoreUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Products().GetBySlug(ctx, slug)
}
