package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	msgProductCreated   = "Produit ajouté avec succès"
	msgProductDeleted   = "Produit supprimé"
	msgProductNotFound  = "Produit non trouvé"
	msgInvalidProductID = "Identifiant de produit invalide"
)

// ProductRequest is the body of POST /produits and PUT /produits/:id.
// Pointers let the validator tell a missing field from a zero value.
type ProductRequest struct {
	Nom         string           `json:"nom"          binding:"required,max=255"`
	Prix        *decimal.Decimal `json:"prix"         binding:"required"`
	CategorieID *int             `json:"categorie_id" binding:"required,gt=0"`
}

func (r *ProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		Nom:         r.Nom,
		Prix:        *r.Prix,
		CategorieID: *r.CategorieID,
	}
}

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/produits")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		FailResponse(c, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	created, err := h.useCase.CreateProduct(c.Request.Context(), req.toDomain())
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", req.Nom, err)
		respondError(c, err, msgProductNotFound)
		return
	}

	SuccessResponse(c, http.StatusCreated, msgProductCreated, created)
}

// UpdateProduct answers with the bare product rather than the message envelope.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", id, err)
		FailResponse(c, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	updated, err := h.useCase.UpdateProduct(c.Request.Context(), id, req.toDomain())
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		respondError(c, err, msgProductNotFound)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete product ID %d: %v", id, err)
		respondError(c, err, msgProductNotFound)
		return
	}

	SuccessResponse(c, http.StatusOK, msgProductDeleted, nil)
}
