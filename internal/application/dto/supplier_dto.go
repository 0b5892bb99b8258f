package dto

// CreateSupplierRequest datos para registrar un proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Category    string `json:"category" validate:"required"`
}

// UpdateSupplierRequest actualización parcial del proveedor.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category"`
}

// SupplierResponse proveedor del directorio.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
