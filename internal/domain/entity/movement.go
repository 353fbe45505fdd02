package entity

import "time"

// MovementType tipo cerrado de movimiento de inventario. El signo de cada tipo
// es fijo (nunca configurable por el caller): ENTRADA, AJUSTE_POSITIVO y
// TRANSFERENCIA_ENTRADA suman; SALIDA, AJUSTE_NEGATIVO y TRANSFERENCIA_SALIDA restan.
type MovementType string

const (
	MovementEntrada              MovementType = "ENTRADA"
	MovementSalida               MovementType = "SALIDA"
	MovementAjustePositivo       MovementType = "AJUSTE_POSITIVO"
	MovementAjusteNegativo       MovementType = "AJUSTE_NEGATIVO"
	MovementTransferenciaEntrada MovementType = "TRANSFERENCIA_ENTRADA"
	MovementTransferenciaSalida  MovementType = "TRANSFERENCIA_SALIDA"
)

// movementSigns tabla estática de signos; única fuente de verdad para la
// reconstrucción del stock desde el libro de movimientos.
var movementSigns = map[MovementType]int{
	MovementEntrada:              +1,
	MovementSalida:               -1,
	MovementAjustePositivo:       +1,
	MovementAjusteNegativo:       -1,
	MovementTransferenciaEntrada: +1,
	MovementTransferenciaSalida:  -1,
}

// Sign devuelve +1 o -1 según el tipo; 0 si el tipo no es válido.
func (t MovementType) Sign() int {
	return movementSigns[t]
}

// Valid indica si el tipo pertenece a la enumeración cerrada.
func (t MovementType) Valid() bool {
	_, ok := movementSigns[t]
	return ok
}

// MovementTypesBySign devuelve los tipos cuyo signo coincide, en orden estable.
// Usado para generar las listas del CASE de reconciliación en SQL sin duplicar
// la tabla de signos.
func MovementTypesBySign(sign int) []MovementType {
	ordered := []MovementType{
		MovementEntrada, MovementSalida,
		MovementAjustePositivo, MovementAjusteNegativo,
		MovementTransferenciaEntrada, MovementTransferenciaSalida,
	}
	var out []MovementType
	for _, t := range ordered {
		if movementSigns[t] == sign {
			out = append(out, t)
		}
	}
	return out
}

// Movement registro inmutable del libro de movimientos: un cambio de cantidad
// firmado para un (producto, sucursal). Append-only: nunca se actualiza ni borra.
// Quantity es siempre la magnitud positiva; el signo lo aporta el tipo.
type Movement struct {
	ID           string
	Seq          int64 // posición de inserción, desempate en listados recientes
	ProductID    string
	BranchID     string
	Type         MovementType
	Quantity     int
	MovementDate time.Time
	UserID       string
	Description  string
	OriginRef    string // referencia al documento origen (compra/venta/ajuste)
}

// SignedQuantity cantidad con el signo del tipo aplicado.
func (m *Movement) SignedQuantity() int {
	return m.Type.Sign() * m.Quantity
}
