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
	_ repository.BrandRepository    = (*BrandRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.SizeRepository     = (*SizeRepo)(nil)
	_ repository.BranchRepository   = (*BranchRepo)(nil)
)

// BrandRepo implementación de BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) Create(brand *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO brands (id, name) VALUES ($1, $2)`, brand.ID, brand.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM brands WHERE id = $1`, id).Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *BrandRepo) Update(brand *entity.Brand) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE brands SET name = $2 WHERE id = $1`, brand.ID, brand.Name)
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BrandRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, name) VALUES ($1, $2)`, category.ID, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2 WHERE id = $1`, category.ID, category.Name)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SizeRepo implementación de SizeRepository sobre PostgreSQL.
type SizeRepo struct {
	q Querier
}

// NewSizeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSizeRepository(q Querier) *SizeRepo {
	return &SizeRepo{q: q}
}

func (r *SizeRepo) Create(size *entity.Size) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sizes (id, name) VALUES ($1, $2)`, size.ID, size.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create size: %w", err)
	}
	return nil
}

func (r *SizeRepo) GetByID(id string) (*entity.Size, error) {
	var s entity.Size
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM sizes WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

func (r *SizeRepo) List() ([]*entity.Size, error) {
	// orden numérico para tallas de calzado ("20".."45")
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM sizes ORDER BY length(name), name`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SizeRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete size: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BranchRepo implementación de BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

func (r *BranchRepo) Create(branch *entity.Branch) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO branches (id, name, address, phone, state) VALUES ($1, $2, $3, $4, $5)`,
		branch.ID, branch.Name, branch.Address, branch.Phone, branch.State)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create branch: %w", err)
	}
	return nil
}

func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	var b entity.Branch
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, address, phone, state FROM branches WHERE id = $1`, id).Scan(
		&b.ID, &b.Name, &b.Address, &b.Phone, &b.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

func (r *BranchRepo) List() ([]*entity.Branch, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, address, phone, state FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.State); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *BranchRepo) Update(branch *entity.Branch) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE branches SET name = $2, address = $3, phone = $4, state = $5 WHERE id = $1`,
		branch.ID, branch.Name, branch.Address, branch.Phone, branch.State)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BranchRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
