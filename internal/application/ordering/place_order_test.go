package ordering_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/application/ordering"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// recordingHook guarda los pedidos notificados.
type recordingHook struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func (h *recordingHook) OrderPlaced(_ context.Context, o *entity.Order, _ *entity.Product) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append(h.orders, o)
}

type panicHook struct{}

func (panicHook) OrderPlaced(context.Context, *entity.Order, *entity.Product) { panic("smtp caído") }

// failingTx envuelve el runner real y hace fallar SetNumber dentro de la transacción.
type failingTx struct {
	inner *memory.TxRunner
}

type failingOrderRepo struct {
	repository.OrderRepository
}

func (failingOrderRepo) SetNumber(context.Context, int64, string) error {
	return errors.New("unique violation")
}

func (f failingTx) RunOrder(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	return f.inner.RunOrder(ctx, func(p repository.ProductRepository, o repository.OrderRepository) error {
		return fn(p, failingOrderRepo{o})
	})
}

func newStore(t *testing.T, stock int) *memory.Store {
	t.Helper()
	store := memory.New()
	require.NoError(t, store.Products().Create(context.Background(), &entity.Product{
		Name: entity.DefaultProductName, Price: entity.DefaultProductPrice, Stock: stock,
	}))
	return store
}

func validRequest(qty string) dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{
		LastName:  "Durand",
		FirstName: "Claire",
		Address:   "12 rue des Lilas, Lyon",
		Phone:     "0612345678",
		Email:     "claire@example.com",
		Quantity:  qty,
	}
}

func stockOf(t *testing.T, store *memory.Store) int {
	t.Helper()
	p, err := store.Products().GetStorefront(context.Background())
	require.NoError(t, err)
	return p.Stock
}

func countOrders(t *testing.T, store *memory.Store) int {
	t.Helper()
	n, err := store.Orders().Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestPlaceOrder_DescuentaStockYCreaPedidoPendiente(t *testing.T) {
	store := newStore(t, 100)
	hook := &recordingHook{}
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil, hook).
		WithClock(func() time.Time { return fixedNow })

	out, err := uc.PlaceOrder(context.Background(), validRequest("3"))
	require.NoError(t, err)

	assert.Equal(t, 97, stockOf(t, store))
	assert.Equal(t, 1, countOrders(t, store))
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, "CMD-2024-0001", out.Number)
	assert.Equal(t, fixedNow, out.CreatedAt)

	stored, err := store.Orders().GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "CMD-2024-0001", stored.Number, "el número queda persistido")

	require.Len(t, hook.orders, 1, "el hook corre una vez tras el commit")
	assert.Equal(t, out.ID, hook.orders[0].ID)
}

func TestPlaceOrder_NumerosUnicosYSecuenciales(t *testing.T) {
	store := newStore(t, 100)
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil).
		WithClock(func() time.Time { return fixedNow })

	seen := map[string]bool{}
	for i := 1; i <= 7; i++ {
		out, err := uc.PlaceOrder(context.Background(), validRequest("1"))
		require.NoError(t, err)
		assert.False(t, seen[out.Number], "número repetido %s", out.Number)
		seen[out.Number] = true
	}
	assert.True(t, seen["CMD-2024-0007"])
}

func TestPlaceOrder_ValidacionSinEfectos(t *testing.T) {
	store := newStore(t, 100)
	hook := &recordingHook{}
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil, hook)

	req := validRequest("abc")
	req.Phone = "12345"
	_, err := uc.PlaceOrder(context.Background(), req)

	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.HasCode(domain.CodeInvalidQuantity))
	assert.True(t, verrs.HasCode(domain.CodeInvalidPhone))
	assert.Equal(t, 100, stockOf(t, store))
	assert.Zero(t, countOrders(t, store))
	assert.Empty(t, hook.orders)
}

func TestPlaceOrder_StockInsuficiente(t *testing.T) {
	store := newStore(t, 3)
	hook := &recordingHook{}
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil, hook)

	_, err := uc.PlaceOrder(context.Background(), validRequest("5"))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, isValidation := domain.AsValidation(err)
	assert.False(t, isValidation, "el stock se verifica aparte de la validación")

	assert.Equal(t, 3, stockOf(t, store))
	assert.Zero(t, countOrders(t, store))
	assert.Empty(t, hook.orders)
}

func TestPlaceOrder_FalloAlNumerarHaceRollback(t *testing.T) {
	store := newStore(t, 10)
	uc := ordering.NewPlaceOrderUseCase(failingTx{inner: memory.NewTxRunner(store)}, nil)

	_, err := uc.PlaceOrder(context.Background(), validRequest("2"))
	require.Error(t, err)

	assert.Equal(t, 10, stockOf(t, store), "sin pedido no hay descuento")
	assert.Zero(t, countOrders(t, store))
}

func TestPlaceOrder_SinProducto(t *testing.T) {
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(memory.New()), nil)
	_, err := uc.PlaceOrder(context.Background(), validRequest("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrder_PanicEnHookNoAfectaAlPedido(t *testing.T) {
	store := newStore(t, 10)
	after := &recordingHook{}
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil, panicHook{}, after)

	out, err := uc.PlaceOrder(context.Background(), validRequest("1"))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 1, countOrders(t, store))
	assert.Len(t, after.orders, 1, "los hooks siguientes corren igual")
}

func TestPlaceOrder_ConcurrenciaNoSobrevende(t *testing.T) {
	store := newStore(t, 5)
	uc := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok, insufficient := 0, 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.PlaceOrder(context.Background(), validRequest("1"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, 5, insufficient)
	assert.Equal(t, 0, stockOf(t, store))
	assert.Equal(t, 5, countOrders(t, store))
}
