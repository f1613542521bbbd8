package validation

type SaleRegister struct {
	ProductID        string  `json:"product_id" binding:"required,len=36"`
	BrandID          string  `json:"brand_id" binding:"required,len=36"`
	Quantity         int     `json:"quantity" binding:"required,gt=0"`
	UnitSellingPrice float64 `json:"unit_selling_price" binding:"required,gt=0"`
	// TODO: validate total_selling_price against quantity*unit_selling_price
	// once product confirms whether callers may supply an independent total.
	TotalSellingPrice float64 `json:"total_selling_price" binding:"required,gt=0"`
}

func (r *SaleRegister) Normalize() {
	r.ProductID = lower(r.ProductID)
	r.BrandID = lower(r.BrandID)
}

type SaleUpdate struct {
	ProductID         *string  `json:"product_id" binding:"omitempty,len=36"`
	BrandID           *string  `json:"brand_id" binding:"omitempty,len=36"`
	Quantity          *int     `json:"quantity" binding:"omitempty,gt=0"`
	UnitSellingPrice  *float64 `json:"unit_selling_price" binding:"omitempty,gt=0"`
	TotalSellingPrice *float64 `json:"total_selling_price" binding:"omitempty,gt=0"`
}

func (r *SaleUpdate) Normalize() {
	r.ProductID = lowerPtr(r.ProductID)
	r.BrandID = lowerPtr(r.BrandID)
}

func (r *SaleUpdate) Validate() error {
	if r.ProductID == nil && r.BrandID == nil && r.Quantity == nil &&
		r.UnitSellingPrice == nil && r.TotalSellingPrice == nil {
		return errEmptyPayload
	}
	return nil
}

type StockLevelRegister struct {
	ProductID    string `json:"product_id" binding:"required,len=36"`
	BrandID      string `json:"brand_id" binding:"required,len=36"`
	CurrentStock *int   `json:"current_stock" binding:"required,gte=0"`
}

func (r *StockLevelRegister) Normalize() {
	r.ProductID = lower(r.ProductID)
	r.BrandID = lower(r.BrandID)
}

type StockLevelUpdate struct {
	ProductID    *string `json:"product_id" binding:"omitempty,len=36"`
	BrandID      *string `json:"brand_id" binding:"omitempty,len=36"`
	CurrentStock *int    `json:"current_stock" binding:"omitempty,gte=0"`
}

func (r *StockLevelUpdate) Normalize() {
	r.ProductID = lowerPtr(r.ProductID)
	r.BrandID = lowerPtr(r.BrandID)
}

func (r *StockLevelUpdate) Validate() error {
	if r.ProductID == nil && r.BrandID == nil && r.CurrentStock == nil {
		return errEmptyPayload
	}
	return nil
}
