package validation

type BrandRegister struct {
	Name     string `json:"name" binding:"required,min=3,max=200"`
	IsActive *bool  `json:"is_active"`
}

func (r *BrandRegister) Normalize() {
	r.Name = lower(r.Name)
}

type BrandUpdate struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=200"`
	IsActive *bool   `json:"is_active"`
}

func (r *BrandUpdate) Normalize() {
	r.Name = lowerPtr(r.Name)
}

func (r *BrandUpdate) Validate() error {
	if r.Name == nil && r.IsActive == nil {
		return errEmptyPayload
	}
	return nil
}

type CategoryRegister struct {
	Name        string `json:"name" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=3,max=2000"`
}

func (r *CategoryRegister) Normalize() {
	r.Name = lower(r.Name)
	r.Description = lower(r.Description)
}

type CategoryUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,min=3,max=2000"`
}

func (r *CategoryUpdate) Normalize() {
	r.Name = lowerPtr(r.Name)
	r.Description = lowerPtr(r.Description)
}

func (r *CategoryUpdate) Validate() error {
	if r.Name == nil && r.Description == nil {
		return errEmptyPayload
	}
	return nil
}

type ProductRegister struct {
	Name         string  `json:"name" binding:"required,min=3,max=200"`
	SellingPrice float64 `json:"selling_price" binding:"required,gt=0"`
	CategoryID   string  `json:"category_id" binding:"required,len=36"`
}

func (r *ProductRegister) Normalize() {
	r.Name = lower(r.Name)
	r.CategoryID = lower(r.CategoryID)
}

type ProductUpdate struct {
	Name         *string  `json:"name" binding:"omitempty,min=3,max=200"`
	SellingPrice *float64 `json:"selling_price" binding:"omitempty,gt=0"`
	CategoryID   *string  `json:"category_id" binding:"omitempty,len=36"`
}

func (r *ProductUpdate) Normalize() {
	r.Name = lowerPtr(r.Name)
	r.CategoryID = lowerPtr(r.CategoryID)
}

func (r *ProductUpdate) Validate() error {
	if r.Name == nil && r.SellingPrice == nil && r.CategoryID == nil {
		return errEmptyPayload
	}
	return nil
}
