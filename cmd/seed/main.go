// seed puebla los datos base de la zapatería: estados de documento y pago,
// métodos de pago, cliente mostrador, sucursales, usuarios iniciales, marcas,
// categorías y tallas. Idempotente: los registros existentes se conservan.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/infrastructure/postgres"
	"github.com/bwcsoft/zapateria-api/pkg/config"
	"github.com/bwcsoft/zapateria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	docStatRepo := postgres.NewDocumentStatusRepository(pool)
	payStatRepo := postgres.NewPaymentStatusRepository(pool)
	payMethRepo := postgres.NewPaymentMethodRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)

	created := 0

	for _, name := range []string{entity.DocumentStatusCompletado, entity.DocumentStatusPendiente, entity.DocumentStatusCancelado} {
		if seedOK(docStatRepo.Create(&entity.DocumentStatus{ID: uuid.NewString(), Name: name})) {
			created++
		}
	}
	for _, name := range []string{entity.PaymentStatusPendiente, entity.PaymentStatusPagado, entity.PaymentStatusParcial, entity.PaymentStatusVencido} {
		if seedOK(payStatRepo.Create(&entity.PaymentStatus{ID: uuid.NewString(), Name: name})) {
			created++
		}
	}
	for _, name := range []string{"EFECTIVO", "TARJETA", "TRANSFERENCIA", "CHEQUE"} {
		if seedOK(payMethRepo.Create(&entity.PaymentMethod{ID: uuid.NewString(), Name: name})) {
			created++
		}
	}

	// Cliente mostrador: destino de las ventas sin cliente explícito
	general, err := customerRepo.GetGeneral()
	if err != nil {
		log.Fatal().Err(err).Msg("consultar cliente mostrador")
	}
	if general == nil {
		now := time.Now()
		err := customerRepo.Create(&entity.Customer{
			ID:        uuid.NewString(),
			FirstName: "Cliente",
			LastName:  "General",
			Email:     entity.GeneralCustomerEmail,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if seedOK(err) {
			created++
		}
	}

	branches := []entity.Branch{
		{ID: uuid.NewString(), Name: "Sucursal Centro", Address: "Calle Principal 123", Phone: "555-0101", State: true},
		{ID: uuid.NewString(), Name: "Sucursal Norte", Address: "Avenida Norte 456", Phone: "555-0102", State: true},
	}
	existing, err := branchRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar sucursales")
	}
	byName := make(map[string]bool, len(existing))
	for _, b := range existing {
		byName[b.Name] = true
	}
	for i := range branches {
		if byName[branches[i].Name] {
			continue
		}
		if seedOK(branchRepo.Create(&branches[i])) {
			created++
		}
	}

	users := []struct {
		username, password, role string
	}{
		{"admin", "admin123", entity.RoleAdministrador},
		{"vendedor", "vendedor123", entity.RoleVendedor},
	}
	for _, u := range users {
		found, err := userRepo.FindByUsername(u.username)
		if err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("consultar usuario")
		}
		if found != nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		now := time.Now()
		err = userRepo.Create(&entity.User{
			ID:           uuid.NewString(),
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if seedOK(err) {
			created++
		}
	}

	for _, name := range []string{"Nike", "Adidas", "Puma", "Reebok", "Converse"} {
		if seedOK(brandRepo.Create(&entity.Brand{ID: uuid.NewString(), Name: name})) {
			created++
		}
	}
	for _, name := range []string{"Deportivo", "Casual", "Formal", "Sandalia", "Bota"} {
		if seedOK(categoryRepo.Create(&entity.Category{ID: uuid.NewString(), Name: name})) {
			created++
		}
	}
	for n := 20; n <= 45; n++ {
		if seedOK(sizeRepo.Create(&entity.Size{ID: uuid.NewString(), Name: fmt.Sprintf("%d", n)})) {
			created++
		}
	}

	log.Info().Int("created", created).Msg("seed completado")
}

// seedOK trata el duplicado como éxito silencioso y aborta en cualquier otro error.
func seedOK(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return false
	}
	panic("seed: " + err.Error())
}
