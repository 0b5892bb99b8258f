package ports

// LowStockAlert datos del correo de alerta de stock bajo.
type LowStockAlert struct {
	To           string
	CompanyName  string
	ProductName  string
	SKU          string
	Quantity     int
	MinThreshold int
}

// MailSender es el puerto de envío de correos de alerta.
// Un fallo de envío no debe propagar al flujo de negocio: se registra y sigue.
type MailSender interface {
	SendLowStockAlert(alert LowStockAlert) error
}
