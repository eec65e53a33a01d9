package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/memory"
	"github.com/jhoicas/dulcibelle-api/pkg/jwt"
)

const testSecret = "test-secret"

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	uc := auth.NewAuthUseCase(store.Admins(), auth.SessionConfig{
		Secret: testSecret, ExpMinutes: 30, Issuer: "dulcibelle",
	}).WithCost(bcrypt.MinCost)
	return uc, store
}

func TestProvisionAdmin_GuardaHashNoTextoPlano(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	out, err := uc.ProvisionAdmin(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Positive(t, out.ID)

	stored, err := store.Admins().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestProvisionAdmin_Duplicado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.ProvisionAdmin(ctx, "admin", "uno")
	require.NoError(t, err)
	_, err = uc.ProvisionAdmin(ctx, "admin", "dos")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProvisionAdmin_DatosVacios(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.ProvisionAdmin(context.Background(), "  ", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Correcto(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	created, err := uc.ProvisionAdmin(ctx, "admin", "s3cret")
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.Admin.Username)

	session, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.AdminID)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.ProvisionAdmin(ctx, "admin", "s3cret")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentAdmin(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	created, err := uc.ProvisionAdmin(ctx, "admin", "s3cret")
	require.NoError(t, err)

	got, err := uc.CurrentAdmin(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	missing, err := uc.CurrentAdmin(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
