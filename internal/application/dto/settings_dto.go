package dto

// SettingsResponse configuración de la cuenta.
type SettingsResponse struct {
	CompanyName         string   `json:"companyName"`
	Currency            string   `json:"currency"`
	Categories          []string `json:"categories"`
	LowStockEmailAlerts bool     `json:"lowStockEmailAlerts"`
	NotificationEmail   string   `json:"notificationEmail"`
}

// UpdateSettingsRequest actualización parcial; nil deja el campo sin tocar.
type UpdateSettingsRequest struct {
	CompanyName         *string   `json:"companyName"`
	Currency            *string   `json:"currency"`
	Categories          *[]string `json:"categories"`
	LowStockEmailAlerts *bool     `json:"lowStockEmailAlerts"`
	NotificationEmail   *string   `json:"notificationEmail"`
}

// AddCategoryRequest agrega una categoría al vocabulario.
type AddCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}
