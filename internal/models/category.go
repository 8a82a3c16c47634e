package models

// Category groups products. A category is never physically removed: deleting
// it flips IsActive, and only while no active product references it.
type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(50);not null"`
	Description *string `json:"description" gorm:"type:varchar(200)"`
	IsActive    bool    `json:"isActive" gorm:"not null;default:true;index"`

	// ProductCount is derived from the products table and never persisted.
	ProductCount int64 `json:"productCount" gorm:"->;-:migration"`
}

// TableName returns the table name for Category model.
func (Category) TableName() string {
	return "categories"
}
