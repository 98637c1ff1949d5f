package reports

// ProductTotal is one row of the most-purchased-items report.
type ProductTotal struct {
	ProductName   string `json:"product_name" gorm:"column:product_name"`
	TotalQuantity int64  `json:"total_quantity" gorm:"column:total_quantity"`
}
