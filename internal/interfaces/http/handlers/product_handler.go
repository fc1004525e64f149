package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/interfaces/http/response"
	"arena.backend/internal/usecases"
)

// ProductHandler serves the merch store
type ProductHandler struct {
	storeUsecase *usecases.StoreUsecase
}

func NewProductHandler(storeUsecase *usecases.StoreUsecase) *ProductHandler {
	return &ProductHandler{storeUsecase: storeUsecase}
}

// ListProducts returns products currently for sale.
// GET /api/v1/store/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	items, err := h.storeUsecase.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetProduct returns one product by slug.
// GET /api/v1/store/products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.storeUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a product to the catalogue.
// POST /api/v1/admin/store/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.storeUsecase.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// Purchase places an order for a product.
// POST /api/v1/store/products/:id/purchase
func (h *ProductHandler) Purchase(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	receipt, err := h.storeUsecase.Purchase(c.Request.Context(), id, input.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"receipt": receipt})
}
