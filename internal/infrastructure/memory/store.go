// Package memory implementa los puertos de persistencia en memoria (STORE_DRIVER=memory).
// Se usa en desarrollo sin PostgreSQL y en tests. Un mutex serializa el acceso; RunOrder
// mantiene el mutex durante toda la transacción y restaura una copia del estado si fn falla.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.OrderRepository   = (*OrderRepo)(nil)
	_ repository.AdminRepository   = (*AdminRepo)(nil)
)

type state struct {
	products   []entity.Product
	orders     []entity.Order
	admins     []entity.Admin
	productSeq int64
	orderSeq   int64
	adminSeq   int64
}

func (s state) clone() state {
	c := s
	c.products = append([]entity.Product(nil), s.products...)
	c.orders = append([]entity.Order(nil), s.orders...)
	c.admins = append([]entity.Admin(nil), s.admins...)
	return c
}

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu sync.Mutex
	st state
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{}
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Orders repositorio de pedidos fuera de transacción.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// Admins repositorio de admins.
func (s *Store) Admins() *AdminRepo { return &AdminRepo{s: s} }

// do ejecuta fn con el estado; si inTx el mutex ya lo tiene RunOrder.
func (s *Store) do(inTx bool, fn func(st *state) error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(&s.st)
}

// TxRunner ejecuta callbacks con repositorios atados a una "transacción" en memoria.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunOrder bloquea el almacén, ejecuta fn y descarta sus cambios si devuelve error.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	backup := r.s.st.clone()
	if err := fn(&ProductRepo{s: r.s, inTx: true}, &OrderRepo{s: r.s, inTx: true}); err != nil {
		r.s.st = backup
		return err
	}
	return nil
}

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) GetStorefront(_ context.Context) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.do(r.inTx, func(st *state) error {
		if len(st.products) > 0 {
			p := st.products[0]
			out = &p
		}
		return nil
	})
	return out, err
}

// GetStorefrontForUpdate: dentro de RunOrder el mutex ya actúa como bloqueo de fila.
func (r *ProductRepo) GetStorefrontForUpdate(ctx context.Context) (*entity.Product, error) {
	return r.GetStorefront(ctx)
}

func (r *ProductRepo) DecrementStock(_ context.Context, productID int64, qty int) error {
	return r.s.do(r.inTx, func(st *state) error {
		for i := range st.products {
			if st.products[i].ID != productID {
				continue
			}
			if st.products[i].Stock < qty {
				return domain.ErrInsufficientStock
			}
			st.products[i].Stock -= qty
			return nil
		}
		return domain.ErrInsufficientStock
	})
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.s.do(r.inTx, func(st *state) error {
		n = len(st.products)
		return nil
	})
	return n, err
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.s.do(r.inTx, func(st *state) error {
		st.productSeq++
		product.ID = st.productSeq
		st.products = append(st.products, *product)
		return nil
	})
}

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	s    *Store
	inTx bool
}

func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	return r.s.do(r.inTx, func(st *state) error {
		st.orderSeq++
		order.ID = st.orderSeq
		st.orders = append(st.orders, *order)
		return nil
	})
}

func (r *OrderRepo) SetNumber(_ context.Context, id int64, number string) error {
	return r.s.do(r.inTx, func(st *state) error {
		idx := -1
		for i := range st.orders {
			if st.orders[i].Number == number && st.orders[i].ID != id {
				return domain.ErrDuplicate
			}
			if st.orders[i].ID == id {
				idx = i
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}
		st.orders[idx].Number = number
		return nil
	})
}

func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	var out *entity.Order
	err := r.s.do(r.inTx, func(st *state) error {
		for i := range st.orders {
			if st.orders[i].ID == id {
				o := st.orders[i]
				out = &o
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *OrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	err := r.s.do(r.inTx, func(st *state) error {
		sorted := append([]entity.Order(nil), st.orders...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
				return sorted[i].ID > sorted[j].ID
			}
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
		if offset >= len(sorted) {
			return nil
		}
		end := offset + limit
		if end > len(sorted) {
			end = len(sorted)
		}
		for i := offset; i < end; i++ {
			o := sorted[i]
			list = append(list, &o)
		}
		return nil
	})
	return list, err
}

func (r *OrderRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.s.do(r.inTx, func(st *state) error {
		n = len(st.orders)
		return nil
	})
	return n, err
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	return r.s.do(r.inTx, func(st *state) error {
		for i := range st.orders {
			if st.orders[i].ID == id {
				st.orders[i].Status = status
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// AdminRepo implementación en memoria de AdminRepository.
type AdminRepo struct {
	s *Store
}

func (r *AdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	return r.s.do(false, func(st *state) error {
		for _, a := range st.admins {
			if a.Username == admin.Username {
				return domain.ErrDuplicate
			}
		}
		st.adminSeq++
		admin.ID = st.adminSeq
		st.admins = append(st.admins, *admin)
		return nil
	})
}

func (r *AdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.s.do(false, func(st *state) error {
		for _, a := range st.admins {
			if a.Username == username {
				found := a
				out = &found
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *AdminRepo) GetByID(_ context.Context, id int64) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.s.do(false, func(st *state) error {
		for _, a := range st.admins {
			if a.ID == id {
				found := a
				out = &found
				return nil
			}
		}
		return nil
	})
	return out, err
}
