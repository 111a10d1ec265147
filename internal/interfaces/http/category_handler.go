package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/application/usecase"
	"github.com/shatalito/pos-api/internal/domain/entity"
)

// CategoryHandler maneja categorías y promociones del catálogo.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type createPromotionRequest struct {
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          string          `json:"start_date"` // YYYY-MM-DD
	EndDate            string          `json:"end_date"`   // YYYY-MM-DD
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Category
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var in createCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCategory(in.Name)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Category
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.DeleteCategory(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Categoría eliminada"})
}

// CreatePromotion godoc
// @Summary      Crear promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Promotion
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/promotions [post]
func (h *CategoryHandler) CreatePromotion(c *fiber.Ctx) error {
	var in createPromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválida, formato YYYY-MM-DD"})
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválida, formato YYYY-MM-DD"})
	}
	out, err := h.uc.CreatePromotion(&entity.Promotion{
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          start,
		EndDate:            end,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPromotions godoc
// @Summary      Listar promociones
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Promotion
// @Router       /api/promotions [get]
func (h *CategoryHandler) ListPromotions(c *fiber.Ctx) error {
	out, err := h.uc.ListPromotions()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
