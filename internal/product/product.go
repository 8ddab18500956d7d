// Package product defines the catalog record and the format string parser.
package product

// Product is a catalog record keyed by its unique code.
type Product struct {
	Code   string `gorm:"primaryKey;column:code;type:text" json:"code" yaml:"code"`
	Name   string `gorm:"column:name;type:text" json:"name" yaml:"name"`
	Format string `gorm:"column:format;type:text" json:"format" yaml:"format"`
}

// TableName returns the table name for the product record
func (Product) TableName() string {
	return "products"
}
