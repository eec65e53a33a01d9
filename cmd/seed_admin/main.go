// seed_admin crea un administrador del panel con la contraseña hasheada con bcrypt.
//
// Uso: go run ./cmd/seed_admin <usuario> [contraseña]
// Si no se pasa la contraseña se lee de ADMIN_PASSWORD.
// Usa la misma configuración de base de datos que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dulcibelle-api/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_admin <usuario> [contraseña]")
		os.Exit(2)
	}
	username := os.Args[1]
	password := os.Getenv("ADMIN_PASSWORD")
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver == config.StoreDriverMemory {
		fmt.Fprintln(os.Stderr, "STORE_DRIVER=memory: el administrador no sobreviviría al proceso")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
		os.Exit(1)
	}

	authUC := auth.NewAuthUseCase(postgres.NewAdminRepository(pool), auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	})
	admin, err := authUC.ProvisionAdmin(ctx, username, password)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintf(os.Stderr, "El usuario %q ya existe\n", username)
		os.Exit(1)
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(os.Stderr, "Usuario y contraseña son obligatorios")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador creado: id=%d usuario=%s\n", admin.ID, admin.Username)
}
