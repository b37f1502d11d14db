package delivery

import (
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgCategoryCreated   = "Catégorie ajoutée avec succès"
	msgCategoryUpdated   = "Catégorie modifiée avec succès"
	msgCategoryDeleted   = "Catégorie et produits associés supprimés"
	msgCategoryNotFound  = "Catégorie non trouvée"
	msgInvalidCategoryID = "Identifiant de catégorie invalide"
)

type CategoryRequest struct {
	Nom string `json:"nom" binding:"required,max=255"`
}

type CategoryHandler struct {
	useCase        usecase.CategoryUseCase
	productUseCase usecase.ProductUseCase
	log            *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, puc usecase.ProductUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase:        uc,
		productUseCase: puc,
		log:            logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
		categories.GET("/:id/produits", h.ListCategoryProducts)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidCategoryID)
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		FailResponse(c, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	created, err := h.useCase.CreateCategory(c.Request.Context(), req.Nom)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", req.Nom, err)
		respondError(c, err, msgCategoryNotFound)
		return
	}

	SuccessResponse(c, http.StatusCreated, msgCategoryCreated, created)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidCategoryID)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update category ID %d: %v", id, err)
		FailResponse(c, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	updated, err := h.useCase.UpdateCategory(c.Request.Context(), id, req.Nom)
	if err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", id, err)
		respondError(c, err, msgCategoryNotFound)
		return
	}

	SuccessResponse(c, http.StatusOK, msgCategoryUpdated, updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidCategoryID)
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete category ID %d: %v", id, err)
		respondError(c, err, msgCategoryNotFound)
		return
	}

	SuccessResponse(c, http.StatusOK, msgCategoryDeleted, nil)
}

func (h *CategoryHandler) ListCategoryProducts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for product listing: %s", c.Param("id"))
		FailResponse(c, http.StatusBadRequest, msgInvalidCategoryID)
		return
	}

	products, err := h.productUseCase.ListProductsByCategory(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to list products for category %d: %v", id, err)
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, products)
}
