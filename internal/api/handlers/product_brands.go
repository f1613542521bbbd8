package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/database/models"
)

type ProductLinkStore interface {
	GetByID(id string) (*models.Product, error)
	GetWithBrands(id string) (*models.Product, error)
	LinkBrand(product *models.Product, brand *models.Brand) error
	UnlinkBrand(product *models.Product, brand *models.Brand) error
}

type BrandLinkStore interface {
	GetByID(id string) (*models.Brand, error)
	GetWithProducts(id string) (*models.Brand, error)
}

// ProductBrandHandler manages the many-to-many link between products and
// brands.
type ProductBrandHandler struct {
	products ProductLinkStore
	brands   BrandLinkStore
}

func NewProductBrandHandler(products ProductLinkStore, brands BrandLinkStore) *ProductBrandHandler {
	return &ProductBrandHandler{products: products, brands: brands}
}

type ProductBrandsResponse struct {
	ProductName string   `json:"product_name"`
	Brands      []string `json:"brands"`
}

type BrandProductsResponse struct {
	BrandName string   `json:"brand_name"`
	Products  []string `json:"products"`
}

func productBrandsResponse(product *models.Product) ProductBrandsResponse {
	names := make([]string, 0, len(product.Brands))
	for _, brand := range product.Brands {
		names = append(names, brand.Name)
	}
	return ProductBrandsResponse{ProductName: product.Name, Brands: names}
}

func brandProductsResponse(brand *models.Brand) BrandProductsResponse {
	names := make([]string, 0, len(brand.Products))
	for _, product := range brand.Products {
		names = append(names, product.Name)
	}
	return BrandProductsResponse{BrandName: brand.Name, Products: names}
}

// Link attaches a brand to a product.
func (h *ProductBrandHandler) Link(c *gin.Context) {
	product, ok := getProduct(c, h.products, c.Param("id"))
	if !ok {
		return
	}

	brand, err := h.brands.GetByID(c.Param("brand_id"))
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}

	if err := h.products.LinkBrand(product, brand); err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}

	linked, err := h.products.GetWithBrands(product.ID)
	if err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}
	c.JSON(http.StatusCreated, productBrandsResponse(linked))
}

// ProductBrands lists all brands linked to a product.
func (h *ProductBrandHandler) ProductBrands(c *gin.Context) {
	product, err := h.products.GetWithBrands(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}
	c.JSON(http.StatusOK, productBrandsResponse(product))
}

// BrandProducts lists all products linked to a brand.
func (h *ProductBrandHandler) BrandProducts(c *gin.Context) {
	brand, err := h.brands.GetWithProducts(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}
	c.JSON(http.StatusOK, brandProductsResponse(brand))
}

// Unlink detaches a brand from a product.
func (h *ProductBrandHandler) Unlink(c *gin.Context) {
	product, ok := getProduct(c, h.products, c.Param("id"))
	if !ok {
		return
	}

	brand, err := h.brands.GetByID(c.Param("brand_id"))
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}

	if err := h.products.UnlinkBrand(product, brand); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
