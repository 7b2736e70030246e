package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/models"
)

type productStore struct {
	db *database.DB
}

// NewProductStore creates the MySQL-backed product accessor.
func NewProductStore(db *database.DB) ProductStore {
	return &productStore{db: db}
}

const productColumns = `id, name, slug, description, full_description, price,
	image, category, in_stock, specs, external_links, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	var specs, links sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.FullDescription,
		&p.Price, &p.Image, &p.Category, &p.InStock, &specs, &links,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Specs = specs.String
	p.ExternalLinks = links.String
	return &p, nil
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func (s *productStore) List(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

func (s *productStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return p, nil
}

func (s *productStore) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = ?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %q: %w", slug, err)
	}
	return p, nil
}

func (s *productStore) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	if in.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if in.Name.TR == "" || in.Name.EN == "" {
		return nil, fmt.Errorf("%w: name is required in both Turkish and English", ErrInvalidInput)
	}
	if in.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, slug, description, full_description, price,
			image, category, in_stock, specs, external_links)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Slug, in.Description, in.FullDescription, in.Price,
		in.Image, in.Category, in.InStock, in.Specs, in.ExternalLinks)
	if isDuplicate(err) {
		return nil, fmt.Errorf("%w: slug %q", ErrDuplicate, in.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read product id: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *productStore) Update(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	sets := make([]string, 0, 10)
	args := make([]interface{}, 0, 11)
	add := func(col string, v interface{}) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Slug != nil {
		if *patch.Slug == "" {
			return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
		}
		add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.FullDescription != nil {
		add("full_description", *patch.FullDescription)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.InStock != nil {
		add("in_stock", *patch.InStock)
	}
	if patch.Specs != nil {
		add("specs", *patch.Specs)
	}
	if patch.ExternalLinks != nil {
		add("external_links", *patch.ExternalLinks)
	}
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if isDuplicate(err) {
		return nil, fmt.Errorf("%w: slug", ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports 0 for no-op updates too, so confirm existence.
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *productStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
