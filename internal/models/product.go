package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a product in the catalog.
// The composite indexes back the search filters and sort columns.
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"type:varchar(100);not null;index:idx_products_is_active_name,priority:2"`
	Description   *string         `json:"description" gorm:"type:varchar(500)"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(18,2);not null;index:idx_products_is_active_price,priority:2;index:idx_products_category_id_is_active_price,priority:3"`
	CategoryID    uint            `json:"categoryId" gorm:"not null;index:idx_products_category_id_is_active,priority:1;index:idx_products_category_id_is_active_price,priority:1"`
	StockQuantity int             `json:"stockQuantity" gorm:"not null;index:idx_products_is_active_stock_quantity,priority:2"`
	CreatedDate   time.Time       `json:"createdDate" gorm:"not null;index:idx_products_is_active_created_date,priority:2"`
	IsActive      bool            `json:"isActive" gorm:"not null;default:true;index:idx_products_category_id_is_active,priority:2;index:idx_products_is_active_name,priority:1;index:idx_products_is_active_price,priority:1;index:idx_products_is_active_created_date,priority:1;index:idx_products_is_active_stock_quantity,priority:1;index:idx_products_category_id_is_active_price,priority:2"`

	// CategoryName is filled by explicit joins on read paths only.
	CategoryName string `json:"categoryName" gorm:"->;-:migration"`

	Category *Category `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for Product model.
func (Product) TableName() string {
	return "products"
}
