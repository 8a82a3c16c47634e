package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	// search is registered ahead of /:id so it is not taken for an ID
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts godoc
// @Summary Get all active products
// @Tags Products
// @Produce json
// @Success 200 {array} models.ProductDto
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllActiveProducts(c.UserContext())
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID godoc
// @Summary Get a product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductDto
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct godoc
// @Summary Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ProductDto
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /api/products [post]
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return invalidBody(err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return err
	}

	c.Location(fmt.Sprintf("/api/products/%d", product.ID))
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct godoc
// @Summary Update an existing product
// @Description Replaces every mutable field, including isActive.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product"
// @Success 200 {object} models.ProductDto
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return invalidBody(err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, req)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct godoc
// @Summary Soft delete a product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.SoftDeleteProduct(c.UserContext(), id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearchProducts godoc
// @Summary Search products with filters and pagination
// @Description Every word of searchTerm must appear in the name or the description (case-insensitive).
// @Description inStock=true keeps products with stock; inStock=false applies no stock filter.
// @Description On the SQLite store only ASCII letters match case-insensitively; Postgres folds all letters.
// @Description Paging clamps pageNumber and pageSize to at least 1; pageSize has no upper bound.
// @Tags Products
// @Produce json
// @Param searchTerm query string false "Words to match"
// @Param categoryId query int false "Category ID"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param inStock query bool false "Only products in stock"
// @Param sortBy query string false "name, price or created" default(name)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} ProductPage
// @Failure 400 {object} ErrorResponse
// @Router /api/products/search [get]
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	req, err := parseSearchRequest(c)
	if err != nil {
		return err
	}
	result, err := h.service.SearchProducts(c.UserContext(), req)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return err
	}
	return c.JSON(result)
}

// ProductPage documents the search response.
type ProductPage = models.PagedResult[models.ProductDto]

// parseSearchRequest reads search options from the query string. Parameter
// names are matched case-insensitively.
func parseSearchRequest(c *fiber.Ctx) (models.ProductSearchRequest, error) {
	req := models.NewProductSearchRequest()

	query := make(map[string]string)
	for key, value := range c.Queries() {
		query[strings.ToLower(key)] = value
	}

	if v := strings.TrimSpace(query["searchterm"]); v != "" {
		req.SearchTerm = &v
	}
	if v, ok := query["categoryid"]; ok && v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return req, invalidQuery("categoryId", "must be a positive integer")
		}
		categoryID := uint(id)
		req.CategoryID = &categoryID
	}
	if v, ok := query["minprice"]; ok && v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return req, invalidQuery("minPrice", "must be a number")
		}
		req.MinPrice = &price
	}
	if v, ok := query["maxprice"]; ok && v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return req, invalidQuery("maxPrice", "must be a number")
		}
		req.MaxPrice = &price
	}
	if v, ok := query["instock"]; ok && v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return req, invalidQuery("inStock", "must be true or false")
		}
		req.InStock = &inStock
	}
	if v, ok := query["sortby"]; ok && v != "" {
		req.SortBy = v
	}
	if v, ok := query["sortorder"]; ok && v != "" {
		req.SortOrder = v
	}
	if v, ok := query["pagenumber"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, invalidQuery("pageNumber", "must be an integer")
		}
		req.PageNumber = n
	}
	if v, ok := query["pagesize"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, invalidQuery("pageSize", "must be an integer")
		}
		req.PageSize = n
	}
	return req, nil
}
