package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, price, stock, description, image, ingredients, usage`

// GetStorefront obtiene el producto de la tienda (el primero por id).
func (r *ProductRepo) GetStorefront(ctx context.Context) (*entity.Product, error) {
	return r.scanOne(ctx, `SELECT `+productColumns+` FROM products ORDER BY id LIMIT 1`)
}

// GetStorefrontForUpdate igual que GetStorefront pero bloquea la fila (SELECT FOR UPDATE). Usar dentro de una tx.
func (r *ProductRepo) GetStorefrontForUpdate(ctx context.Context) (*entity.Product, error) {
	return r.scanOne(ctx, `SELECT `+productColumns+` FROM products ORDER BY id LIMIT 1 FOR UPDATE`)
}

func (r *ProductRepo) scanOne(ctx context.Context, query string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Description, &p.Image, &p.Ingredients, &p.Usage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// DecrementStock descuenta qty solo si alcanza el stock; 0 filas afectadas => ErrInsufficientStock.
func (r *ProductRepo) DecrementStock(ctx context.Context, productID int64, qty int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Count número de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Create persiste un producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, price, stock, description, image, ingredients, usage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Price, p.Stock, p.Description, p.Image, p.Ingredients, p.Usage,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}
