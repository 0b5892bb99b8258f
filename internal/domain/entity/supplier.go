package entity

// Supplier es un proveedor del directorio. Product lo referencia por ID
// (relación opcional, sin ownership).
type Supplier struct {
	ID          string
	AccountID   string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Category    string
}
