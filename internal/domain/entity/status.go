package entity

// Estados de documento (compras y ventas).
const (
	DocumentStatusCompletado = "COMPLETADO"
	DocumentStatusPendiente  = "PENDIENTE"
	DocumentStatusCancelado  = "CANCELADO"
)

// Estados de pago.
const (
	PaymentStatusPendiente = "PENDIENTE"
	PaymentStatusPagado    = "PAGADO"
	PaymentStatusParcial   = "PARCIAL"
	PaymentStatusVencido   = "VENCIDO"
)

// DocumentStatus estado de un documento (COMPLETADO, PENDIENTE, CANCELADO).
type DocumentStatus struct {
	ID   string
	Name string
}

// PaymentStatus estado de pago (PENDIENTE, PAGADO, PARCIAL, VENCIDO).
type PaymentStatus struct {
	ID   string
	Name string
}

// PaymentMethod método de pago (EFECTIVO, TARJETA, TRANSFERENCIA, CHEQUE).
type PaymentMethod struct {
	ID   string
	Name string
}
