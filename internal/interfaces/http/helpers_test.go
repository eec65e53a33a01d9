package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/application/notification"
	"github.com/jhoicas/dulcibelle-api/internal/application/ordering"
	"github.com/jhoicas/dulcibelle-api/internal/application/ports"
	"github.com/jhoicas/dulcibelle-api/internal/application/usecase"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/dulcibelle-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/dulcibelle-api/pkg/jwt"
	"github.com/jhoicas/dulcibelle-api/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "dulcibelle-test"
	testUser     = "admin"
	testPassword = "s3cret"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []ports.MailMessage
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubReceipts struct{}

func (stubReceipts) GenerateOrderReceipt(context.Context, *entity.Order, *entity.Product) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

type testEnv struct {
	app    *fiber.App
	store  *memory.Store
	mailer *fakeMailer
	place  *ordering.PlaceOrderUseCase
}

type envOptions struct {
	stock      int
	mailerErr  error
	csrf       bool
	noProducts bool
}

// newTestEnv arma la app completa sobre el almacén en memoria con un admin provisto.
func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	if !opts.noProducts {
		stock := opts.stock
		if stock == 0 {
			stock = entity.DefaultProductStock
		}
		require.NoError(t, store.Products().Create(ctx, &entity.Product{
			Name: entity.DefaultProductName, Price: entity.DefaultProductPrice, Stock: stock,
		}))
	}

	mailer := &fakeMailer{err: opts.mailerErr}
	dispatcher := notification.NewDispatcher(mailer, nil, notification.Config{
		ShopName:   "Dulcibelle",
		AdminEmail: "admin@example.com",
		Money:      money.NewFormatter("en", "MAD"),
	}, nil)

	authUC := auth.NewAuthUseCase(store.Admins(), auth.SessionConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer,
	}).WithCost(bcrypt.MinCost)
	_, err := authUC.ProvisionAdmin(ctx, testUser, testPassword)
	require.NoError(t, err)

	place := ordering.NewPlaceOrderUseCase(memory.NewTxRunner(store), nil, dispatcher)
	app := apphttp.NewApp(apphttp.AppOptions{Name: "dulcibelle-test", CSRFEnabled: opts.csrf}, apphttp.RouterDeps{
		StorefrontUC: usecase.NewStorefrontUseCase(store.Products(), store.Orders()),
		PlaceOrder:   place,
		OrderAdminUC: usecase.NewOrderAdminUseCase(store.Orders(), store.Products(), stubReceipts{}),
		AuthUC:       authUC,
		Session:      apphttp.SessionCookie{Secret: testSecret, Revoked: pkgjwt.NewRevocationList()},
	})
	return &testEnv{app: app, store: store, mailer: mailer, place: place}
}

func (e *testEnv) do(t *testing.T, req *http.Request, cookies []*http.Cookie) *http.Response {
	t.Helper()
	for _, c := range cookies {
		if c.Value != "" {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) get(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, path, nil), cookies)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req, cookies)
}

// login devuelve solo la cookie de sesión (sin el flash de bienvenida).
func (e *testEnv) login(t *testing.T) []*http.Cookie {
	t.Helper()
	resp := e.postForm(t, "/admin/login", url.Values{"username": {testUser}, "password": {testPassword}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))
	session := cookieNamed(resp.Cookies(), apphttp.DefaultSessionCookieName)
	require.NotNil(t, session)
	return []*http.Cookie{session}
}

func validOrderForm() url.Values {
	return url.Values{
		"nom":       {"Durand"},
		"prenom":    {"Claire"},
		"adresse":   {"12 rue des Lilas, Lyon"},
		"telephone": {"0612345678"},
		"email":     {"claire@example.com"},
		"quantite":  {"2"},
	}
}

func decodePage(t *testing.T, resp *http.Response) dto.PageView {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var page dto.PageView
	require.NoError(t, json.Unmarshal(body, &page), string(body))
	return page
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func flashMessages(page dto.PageView) []string {
	out := make([]string, 0, len(page.Flashes))
	for _, f := range page.Flashes {
		out = append(out, f.Message)
	}
	return out
}

func cookieNamed(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var errSMTP = errors.New("smtp: connection refused")
