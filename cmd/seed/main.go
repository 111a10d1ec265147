// seed crea el primer Super Usuario del sistema (las tablas de referencia se
// siembran con las migraciones al arrancar la API).
//
// Uso: go run ./cmd/seed <username> <password> [email]
// La contraseña debe cumplir la política: mínimo 8 caracteres, una mayúscula,
// un número y un símbolo.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/infrastructure/postgres"
	"github.com/shatalito/pos-api/pkg/config"
	"github.com/shatalito/pos-api/pkg/password"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: seed <username> <password> [email]")
		os.Exit(1)
	}
	username, plain := os.Args[1], os.Args[2]
	email := ""
	if len(os.Args) > 3 {
		email = os.Args[3]
	}

	if ok, msg := password.Validate(plain); !ok {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Fprintf(os.Stderr, "El usuario %q ya existe\n", username)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperUsuario,
		Active:       true,
	}
	if err := users.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Super Usuario %q creado\n", username)
}
