package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var (
	_ repository.DocumentStatusRepository = (*DocumentStatusRepo)(nil)
	_ repository.PaymentStatusRepository  = (*PaymentStatusRepo)(nil)
	_ repository.PaymentMethodRepository  = (*PaymentMethodRepo)(nil)
)

// DocumentStatusRepo implementación de DocumentStatusRepository sobre PostgreSQL.
type DocumentStatusRepo struct {
	q Querier
}

// NewDocumentStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStatusRepository(q Querier) *DocumentStatusRepo {
	return &DocumentStatusRepo{q: q}
}

func (r *DocumentStatusRepo) Create(status *entity.DocumentStatus) error {
	return createNamed(r.q, "document_statuses", status.ID, status.Name)
}

func (r *DocumentStatusRepo) GetByID(id string) (*entity.DocumentStatus, error) {
	id2, name, err := getNamed(r.q, `SELECT id, name FROM document_statuses WHERE id = $1`, id)
	if err != nil || name == "" {
		return nil, err
	}
	return &entity.DocumentStatus{ID: id2, Name: name}, nil
}

func (r *DocumentStatusRepo) GetByName(name string) (*entity.DocumentStatus, error) {
	id, name2, err := getNamed(r.q, `SELECT id, name FROM document_statuses WHERE name = $1`, name)
	if err != nil || name2 == "" {
		return nil, err
	}
	return &entity.DocumentStatus{ID: id, Name: name2}, nil
}

func (r *DocumentStatusRepo) List() ([]*entity.DocumentStatus, error) {
	pairs, err := listNamed(r.q, `SELECT id, name FROM document_statuses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.DocumentStatus, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &entity.DocumentStatus{ID: p[0], Name: p[1]})
	}
	return out, nil
}

// PaymentStatusRepo implementación de PaymentStatusRepository sobre PostgreSQL.
type PaymentStatusRepo struct {
	q Querier
}

// NewPaymentStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentStatusRepository(q Querier) *PaymentStatusRepo {
	return &PaymentStatusRepo{q: q}
}

func (r *PaymentStatusRepo) Create(status *entity.PaymentStatus) error {
	return createNamed(r.q, "payment_statuses", status.ID, status.Name)
}

func (r *PaymentStatusRepo) GetByID(id string) (*entity.PaymentStatus, error) {
	id2, name, err := getNamed(r.q, `SELECT id, name FROM payment_statuses WHERE id = $1`, id)
	if err != nil || name == "" {
		return nil, err
	}
	return &entity.PaymentStatus{ID: id2, Name: name}, nil
}

func (r *PaymentStatusRepo) GetByName(name string) (*entity.PaymentStatus, error) {
	id, name2, err := getNamed(r.q, `SELECT id, name FROM payment_statuses WHERE name = $1`, name)
	if err != nil || name2 == "" {
		return nil, err
	}
	return &entity.PaymentStatus{ID: id, Name: name2}, nil
}

func (r *PaymentStatusRepo) List() ([]*entity.PaymentStatus, error) {
	pairs, err := listNamed(r.q, `SELECT id, name FROM payment_statuses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PaymentStatus, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &entity.PaymentStatus{ID: p[0], Name: p[1]})
	}
	return out, nil
}

// PaymentMethodRepo implementación de PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	return createNamed(r.q, "payment_methods", method.ID, method.Name)
}

func (r *PaymentMethodRepo) GetByName(name string) (*entity.PaymentMethod, error) {
	id, name2, err := getNamed(r.q, `SELECT id, name FROM payment_methods WHERE name = $1`, name)
	if err != nil || name2 == "" {
		return nil, err
	}
	return &entity.PaymentMethod{ID: id, Name: name2}, nil
}

func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	pairs, err := listNamed(r.q, `SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PaymentMethod, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &entity.PaymentMethod{ID: p[0], Name: p[1]})
	}
	return out, nil
}

// helpers comunes a las tres tablas id+name

func createNamed(q Querier, table, id, name string) error {
	_, err := q.Exec(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (id, name) VALUES ($1, $2)`, table), id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

func getNamed(q Querier, query, arg string) (id, name string, err error) {
	err = q.QueryRow(context.Background(), query, arg).Scan(&id, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("get status: %w", err)
	}
	return id, name, nil
}

func listNamed(q Querier, query string) ([][2]string, error) {
	rows, err := q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()
	var pairs [][2]string
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		pairs = append(pairs, [2]string{id, name})
	}
	return pairs, rows.Err()
}
