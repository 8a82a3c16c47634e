package handlers

import (
	"fmt"
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories godoc
// @Summary Get all active categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.CategoryDto
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllActiveCategories(c.UserContext())
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return err
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID godoc
// @Summary Get a category by ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.CategoryDto
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleCreateCategory godoc
// @Summary Create a new category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.CategoryDto
// @Failure 400 {object} ErrorResponse
// @Router /api/categories [post]
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return invalidBody(err)
	}

	category, err := h.service.CreateCategory(c.UserContext(), req)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return err
	}

	c.Location(fmt.Sprintf("/api/categories/%d", category.ID))
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory godoc
// @Summary Update an existing category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.CategoryDto
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update category request body: %v", err)
		return invalidBody(err)
	}

	category, err := h.service.UpdateCategory(c.UserContext(), id, req)
	if err != nil {
		log.Printf("Error updating category %d: %v", id, err)
		return err
	}
	return c.JSON(category)
}

// HandleDeleteCategory godoc
// @Summary Soft delete a category
// @Description Fails with 400 while active products still reference the category.
// @Tags Categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.SoftDeleteCategory(c.UserContext(), id); err != nil {
		log.Printf("Error deleting category %d: %v", id, err)
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
