package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, seq, product_id, branch_id, type, quantity, movement_date, user_id, description, origin_ref`

// Create persiste un movimiento. seq lo asigna la columna IDENTITY y se
// devuelve sobre la entidad para respetar el orden de inserción en listados.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, branch_id, type, quantity, movement_date, user_id, description, origin_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		movement.ID, movement.ProductID, movement.BranchID, string(movement.Type),
		movement.Quantity, movement.MovementDate, movement.UserID,
		movement.Description, movement.OriginRef,
	).Scan(&movement.Seq)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListRecent lista los movimientos más recientes por fecha descendente;
// empates de fecha se resuelven por orden de inserción (seq).
func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		ORDER BY movement_date DESC, seq DESC
		LIMIT $1`
	return r.list(query, limit)
}

// ListByProduct lista movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE product_id = $1
		ORDER BY movement_date DESC, seq DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, productID, limit, offset)
}

// ListByBranch lista movimientos de una sucursal, más recientes primero.
func (r *MovementRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE branch_id = $1
		ORDER BY movement_date DESC, seq DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, branchID, limit, offset)
}

// SumSignedByPair reconstruye la cantidad por (producto, sucursal) sumando las
// magnitudes con el signo de cada tipo. Las listas del CASE salen de la tabla
// de signos de entity, no se duplican aquí.
func (r *MovementRepo) SumSignedByPair() ([]repository.StockSum, error) {
	query := `
		SELECT product_id, branch_id,
			SUM(CASE
				WHEN type = ANY($1) THEN quantity
				WHEN type = ANY($2) THEN -quantity
				ELSE 0
			END)::bigint AS total
		FROM movements
		GROUP BY product_id, branch_id
		ORDER BY product_id, branch_id`
	rows, err := r.q.Query(context.Background(), query,
		typeNames(entity.MovementTypesBySign(+1)),
		typeNames(entity.MovementTypesBySign(-1)),
	)
	if err != nil {
		return nil, fmt.Errorf("sum movements: %w", err)
	}
	defer rows.Close()
	var sums []repository.StockSum
	for rows.Next() {
		var s repository.StockSum
		var total int64
		if err := rows.Scan(&s.ProductID, &s.BranchID, &total); err != nil {
			return nil, fmt.Errorf("scan sum: %w", err)
		}
		s.Quantity = int(total)
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

func typeNames(types []entity.MovementType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

func (r *MovementRepo) scanOne(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var typ string
	if err := row.Scan(&m.ID, &m.Seq, &m.ProductID, &m.BranchID, &typ,
		&m.Quantity, &m.MovementDate, &m.UserID, &m.Description, &m.OriginRef); err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(strings.ToUpper(typ))
	return &m, nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
