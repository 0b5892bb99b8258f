package entity

// DefaultCategories es el vocabulario inicial de categorías de una cuenta nueva.
var DefaultCategories = []string{
	"Electronics", "Appliances", "Furniture", "Textiles", "Stationery", "Groceries", "Other",
}

// Settings es el singleton de configuración por cuenta de negocio.
// Categories es el vocabulario cerrado al que deben pertenecer las categorías
// de Product y Supplier (validado al momento del input, no como constraint duro).
type Settings struct {
	AccountID           string
	CompanyName         string
	Currency            string // símbolo, ej. "₦"
	Categories          []string
	LowStockEmailAlerts bool
	NotificationEmail   string
}

// DefaultSettings devuelve la configuración inicial de una cuenta.
func DefaultSettings(accountID string) *Settings {
	cats := make([]string, len(DefaultCategories))
	copy(cats, DefaultCategories)
	return &Settings{
		AccountID:           accountID,
		CompanyName:         "StockBit Pro Store",
		Currency:            "₦",
		Categories:          cats,
		LowStockEmailAlerts: true,
	}
}

// HasCategory indica si cat pertenece al vocabulario configurado.
func (s *Settings) HasCategory(cat string) bool {
	for _, c := range s.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
