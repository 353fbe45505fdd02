// Package inventory implementa el motor de stock: libro de movimientos
// append-only, stock materializado por (producto, sucursal) y el guard de
// consistencia que valida todas las líneas antes de mutar cualquiera, dentro
// de la misma transacción que realiza las mutaciones.
package inventory

import (
	"sort"
	"time"

	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// MovementRecord una mutación de stock con su asiento correspondiente en el
// libro. Quantity es la magnitud positiva; el signo lo decide el tipo.
type MovementRecord struct {
	ProductID   string
	BranchID    string
	Type        entity.MovementType
	Quantity    int
	UserID      string
	Description string
	OriginRef   string
	At          time.Time
}

type pairKey struct {
	productID string
	branchID  string
}

// ApplyMovementsInTx aplica un conjunto de movimientos como una sola unidad:
//
//  1. Bloquea la fila de stock de cada par tocado (SELECT FOR UPDATE) en orden
//     determinista de par, para que operaciones concurrentes sobre los mismos
//     pares no se bloqueen en orden cruzado.
//  2. Valida todas las líneas contra las cantidades bloqueadas; si alguna
//     dejaría el stock negativo retorna StockShortageError y no muta nada
//     (el caller hace rollback).
//  3. Actualiza el stock de cada par y registra exactamente un asiento en el
//     libro por cada línea, en el orden del caller.
//
// Debe invocarse únicamente con repositorios atados a la transacción del
// TxRunner; fuera de una tx los bloqueos de fila no sirven de nada.
func ApplyMovementsInTx(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	records []MovementRecord,
) error {
	if len(records) == 0 {
		return domain.ErrInvalidInput
	}
	for _, rec := range records {
		if !rec.Type.Valid() || rec.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}

	// Pares tocados, en orden determinista para el bloqueo
	pairs := make([]pairKey, 0, len(records))
	seen := make(map[pairKey]bool, len(records))
	for _, rec := range records {
		k := pairKey{rec.ProductID, rec.BranchID}
		if !seen[k] {
			seen[k] = true
			pairs = append(pairs, k)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].productID != pairs[j].productID {
			return pairs[i].productID < pairs[j].productID
		}
		return pairs[i].branchID < pairs[j].branchID
	})

	// Fase de bloqueo: FOR UPDATE por par. Un par sin fila se materializa en
	// cero al bloquear, de modo que el lock existe desde el primer movimiento.
	locked := make(map[pairKey]*entity.Stock, len(pairs))
	for _, k := range pairs {
		stock, err := stockRepo.GetForUpdate(k.productID, k.branchID)
		if err != nil {
			return err
		}
		locked[k] = stock
	}

	// Fase de validación: todas las líneas contra el total corrido del par,
	// antes de mutar cualquiera.
	running := make(map[pairKey]int, len(pairs))
	for k, s := range locked {
		running[k] = s.Quantity
	}
	for _, rec := range records {
		k := pairKey{rec.ProductID, rec.BranchID}
		next := running[k] + rec.Type.Sign()*rec.Quantity
		if next < 0 {
			return &StockShortageError{
				ProductID: rec.ProductID,
				BranchID:  rec.BranchID,
				Available: running[k],
				Requested: rec.Quantity,
			}
		}
		running[k] = next
	}

	// Fase de mutación: un Upsert por par y un asiento por línea.
	for _, k := range pairs {
		stock := locked[k]
		stock.Quantity = running[k]
		stock.UpdatedAt = records[0].At
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
	}
	for _, rec := range records {
		mov := &entity.Movement{
			ProductID:    rec.ProductID,
			BranchID:     rec.BranchID,
			Type:         rec.Type,
			Quantity:     rec.Quantity,
			MovementDate: rec.At,
			UserID:       rec.UserID,
			Description:  rec.Description,
			OriginRef:    rec.OriginRef,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMovementInTx caso de una sola línea; devuelve la cantidad resultante.
func ApplyMovementInTx(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	rec MovementRecord,
) (int, error) {
	if err := ApplyMovementsInTx(movRepo, stockRepo, []MovementRecord{rec}); err != nil {
		return 0, err
	}
	stock, err := stockRepo.Get(rec.ProductID, rec.BranchID)
	if err != nil {
		return 0, err
	}
	return stock.Quantity, nil
}
