// create_employee da de alta un empleado (admin o bodegero) con la contraseña en bcrypt.
// Los clientes se registran por la API; el personal solo se crea con esta herramienta.
//
// Uso: EMPLOYEE_PASSWORD=... go run ./cmd/create_employee <usuario> <admin|bodegero> <nombre>
// La conexión se toma de la misma configuración que el servidor (DB_DRIVER, DATABASE_URL, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/database"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/textnorm"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "uso: create_employee <usuario> <admin|bodegero> <nombre>")
		os.Exit(2)
	}
	usuario := textnorm.Username(os.Args[1])
	nombre := strings.TrimSpace(strings.Join(os.Args[3:], " "))
	role, err := entity.ParseRole(os.Args[2])
	if err != nil || !role.IsStaff() {
		fmt.Fprintf(os.Stderr, "Rol inválido %q: solo admin o bodegero\n", os.Args[2])
		os.Exit(2)
	}
	password := os.Getenv("EMPLOYEE_PASSWORD")
	if len(password) < 6 {
		fmt.Fprintln(os.Stderr, "EMPLOYEE_PASSWORD requerido (mínimo 6 caracteres)")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a la base: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if cfg.DB.Migrate {
		if err := db.Migrate(); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	taken, err := database.NewClientRepository(db).UsuarioTaken(ctx, usuario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verificar usuario: %v\n", err)
		os.Exit(1)
	}
	if taken {
		fmt.Fprintf(os.Stderr, "El usuario %q ya pertenece a un cliente\n", usuario)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	id, err := database.NewEmployeeRepository(db).Create(ctx, &entity.Employee{
		Nombre:       nombre,
		Usuario:      usuario,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear empleado: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Empleado %d creado: %s (%s)\n", id, usuario, role)
}
