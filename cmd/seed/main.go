// seed puebla las tablas de referencia geográfica (regiones y comunas) desde
// un CSV latin-1 con formato "region;comuna" por línea, y crea el usuario
// administrador inicial si no existe.
//
// Uso: go run ./cmd/seed [ruta/comunas.csv]
// Por defecto busca comunas.csv en el directorio actual. El admin inicial se
// controla con SEED_ADMIN_USERNAME / SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/infrastructure/postgres"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/config"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	csvPath := "comunas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	ctx := context.Background()
	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	regions, communes, err := seedLocations(locationRepo, csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("csv", csvPath).Msg("seed de regiones y comunas")
	}
	log.Info().Int("regiones", regions).Int("comunas", communes).Msg("referencia geográfica cargada")

	if err := seedAdmin(userRepo); err != nil {
		log.Fatal().Err(err).Msg("seed del administrador inicial")
	}
	log.Info().Msg("seed completado")
}

// seedLocations lee el CSV latin-1 "region;comuna" y crea las filas que
// falten. Las regiones repetidas se insertan una sola vez.
func seedLocations(repo *postgres.LocationRepo, csvPath string) (int, int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, 0, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	// Los exports oficiales vienen en ISO-8859-1, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return 0, 0, fmt.Errorf("leer CSV: %w", err)
	}

	existing, err := repo.ListRegions()
	if err != nil {
		return 0, 0, err
	}
	regionIDs := make(map[string]string, len(existing))
	for _, reg := range existing {
		regionIDs[reg.Name] = reg.ID
	}

	seenCommunes := make(map[string]bool)
	if all, err := repo.ListCommunes(""); err == nil {
		for _, c := range all {
			seenCommunes[c.RegionID+"/"+c.Name] = true
		}
	}

	var newRegions, newCommunes int
	for _, record := range records {
		regionName := strings.TrimSpace(record[0])
		communeName := strings.TrimSpace(record[1])
		if regionName == "" || communeName == "" {
			continue
		}

		regionID, ok := regionIDs[regionName]
		if !ok {
			region := &entity.Region{ID: uuid.New().String(), Name: regionName}
			if err := repo.CreateRegion(region); err != nil {
				return newRegions, newCommunes, err
			}
			regionID = region.ID
			regionIDs[regionName] = regionID
			newRegions++
		}

		key := regionID + "/" + communeName
		if seenCommunes[key] {
			continue
		}
		commune := &entity.Commune{ID: uuid.New().String(), Name: communeName, RegionID: regionID}
		if err := repo.CreateCommune(commune); err != nil {
			return newRegions, newCommunes, err
		}
		seenCommunes[key] = true
		newCommunes++
	}
	return newRegions, newCommunes, nil
}

// seedAdmin crea el administrador inicial si el username aún no existe.
func seedAdmin(repo *postgres.UserRepo) error {
	username := envOr("SEED_ADMIN_USERNAME", "admin")
	email := envOr("SEED_ADMIN_EMAIL", "admin@localhost")
	password := envOr("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD es requerido")
	}

	existing, err := repo.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return repo.Create(&entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstNames:   "Administrador",
		Role:         entity.RoleAdministrador,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
