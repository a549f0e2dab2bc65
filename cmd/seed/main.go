// seed crea/actualiza el usuario admin de demo y un catálogo mínimo de piezas
// para ambientes de desarrollo.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	email := "admin@almacen.local"
	password := "admin123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcrypt: %v\n", err)
		os.Exit(1)
	}

	adminID := uuid.New().String()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'Admin Demo', 'admin', 'active', now(), now())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = 'admin',
		    status = 'active',
		    updated_at = now()`,
		adminID, email, string(hash),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed admin: %v\n", err)
		os.Exit(1)
	}

	// Recuperar el ID real (puede venir de una corrida anterior)
	if err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&adminID); err != nil {
		fmt.Fprintf(os.Stderr, "leer admin: %v\n", err)
		os.Exit(1)
	}

	pieces := []struct {
		serial, name, category, location string
		quantity, minStock               int64
		unitPrice                        string
	}{
		{"RTR-2104-A", "Rodamiento 6204-2RS", "rodamientos", "A-01-03", 48, 10, "8500.00"},
		{"FLT-0310-B", "Filtro hidráulico HF6553", "filtros", "B-02-01", 12, 6, "64000.00"},
		{"COR-7781-C", "Correa dentada 8M-1200", "correas", "A-03-07", 5, 5, "112000.00"},
		{"SEN-4432-D", "Sensor inductivo M12 NPN", "sensores", "C-01-02", 0, 4, "98000.00"},
	}
	for _, p := range pieces {
		_, err := pool.Exec(ctx, `
			INSERT INTO pieces (id, serial_number, name, description, category, location,
				quantity, min_stock, unit_price, unit_measure, supplier_id, active, created_at, updated_at)
			VALUES ($1, $2, $3, '', $4, $5, $6, $7, $8, 'unidad', '', true, now(), now())
			ON CONFLICT (serial_number) DO NOTHING`,
			uuid.New().String(), p.serial, p.name, p.category, p.location,
			p.quantity, p.minStock, p.unitPrice,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed pieza %s: %v\n", p.serial, err)
			os.Exit(1)
		}
	}

	// El admin recibe alertas de todas las categorías sembradas
	for _, cat := range []string{"rodamientos", "filtros", "correas", "sensores"} {
		_, err := pool.Exec(ctx, `
			INSERT INTO alert_subscriptions (user_id, category)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			adminID, cat,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed suscripción %s: %v\n", cat, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Usuario '%s' creado/actualizado con password '%s'; %d piezas sembradas\n",
		email, password, len(pieces))
}
