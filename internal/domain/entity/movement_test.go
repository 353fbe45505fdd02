package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de signos: única fuente de verdad para reconstruir stock desde el
// libro. Si alguien cambia el signo de un tipo, la reconciliación entera se
// rompe; estos tests lo detectan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementType_TablaDeSignos(t *testing.T) {
	casos := map[entity.MovementType]int{
		entity.MovementEntrada:              +1,
		entity.MovementSalida:               -1,
		entity.MovementAjustePositivo:       +1,
		entity.MovementAjusteNegativo:       -1,
		entity.MovementTransferenciaEntrada: +1,
		entity.MovementTransferenciaSalida:  -1,
	}
	for tipo, signo := range casos {
		assert.Equal(t, signo, tipo.Sign(), "signo incorrecto para %s", tipo)
		assert.True(t, tipo.Valid(), "%s debe ser un tipo válido", tipo)
	}
}

func TestMovementType_TipoDesconocido(t *testing.T) {
	tipo := entity.MovementType("DEVOLUCION")
	assert.Equal(t, 0, tipo.Sign(), "un tipo desconocido no tiene signo")
	assert.False(t, tipo.Valid(), "un tipo desconocido no es válido")

	vacio := entity.MovementType("")
	assert.False(t, vacio.Valid(), "el tipo vacío no es válido")
}

func TestMovementTypesBySign_ParticionaLaEnumeracion(t *testing.T) {
	positivos := entity.MovementTypesBySign(+1)
	negativos := entity.MovementTypesBySign(-1)

	require.Len(t, positivos, 3)
	require.Len(t, negativos, 3)

	assert.ElementsMatch(t, []entity.MovementType{
		entity.MovementEntrada,
		entity.MovementAjustePositivo,
		entity.MovementTransferenciaEntrada,
	}, positivos)
	assert.ElementsMatch(t, []entity.MovementType{
		entity.MovementSalida,
		entity.MovementAjusteNegativo,
		entity.MovementTransferenciaSalida,
	}, negativos)

	// Un signo sin tipos asociados devuelve vacío, no pánico
	assert.Empty(t, entity.MovementTypesBySign(0))
}

func TestMovementTypesBySign_OrdenEstable(t *testing.T) {
	// El orden alimenta queries SQL generadas; debe ser determinista entre llamadas
	assert.Equal(t, entity.MovementTypesBySign(+1), entity.MovementTypesBySign(+1))
	assert.Equal(t, entity.MovementTypesBySign(-1), entity.MovementTypesBySign(-1))
}

// ── SignedQuantity ────────────────────────────────────────────────────────────

func TestMovement_SignedQuantity(t *testing.T) {
	entrada := &entity.Movement{Type: entity.MovementEntrada, Quantity: 5}
	salida := &entity.Movement{Type: entity.MovementSalida, Quantity: 5}
	ajuste := &entity.Movement{Type: entity.MovementAjusteNegativo, Quantity: 2}

	assert.Equal(t, 5, entrada.SignedQuantity())
	assert.Equal(t, -5, salida.SignedQuantity())
	assert.Equal(t, -2, ajuste.SignedQuantity())
}
