// Package pgtest starts a disposable PostgreSQL for integration suites and
// seeds the party directory.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/partyrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated schema in a throwaway container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err = postgres_adapter.Migrate(db); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE
		final_agreements, offers, loads,
		facilities, shipment_admins, shipments,
		company_employees, companies, profiles, app_users`).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Seeder writes directory rows through partyrepo.
type Seeder struct {
	Directory *partyrepo.GormDirectory
	seq       int
}

func (d *Database) Seeder() *Seeder {
	return &Seeder{Directory: partyrepo.NewGormDirectory(d.DB)}
}

// Profile creates an AppUser holding role together with its active profile.
func (s *Seeder) Profile(ctx context.Context, role party.Role) (*party.Profile, error) {
	ut, err := party.NewUserType(role)
	if err != nil {
		return nil, err
	}
	u, err := party.NewAppUser(kernel.NewUUID(), ut, role)
	if err != nil {
		return nil, err
	}
	if err = s.Directory.SaveAppUser(ctx, u); err != nil {
		return nil, err
	}
	p, err := party.NewProfile(kernel.NewUUID(), u.ID(), role)
	if err != nil {
		return nil, err
	}
	return p, s.Directory.SaveProfile(ctx, p)
}

// Manager creates an AppUser of the manager type.
func (s *Seeder) Manager(ctx context.Context) (*party.AppUser, error) {
	ut, err := party.NewUserType(party.RoleManager)
	if err != nil {
		return nil, err
	}
	u, err := party.NewAppUser(kernel.NewUUID(), ut, party.RoleManager)
	if err != nil {
		return nil, err
	}
	return u, s.Directory.SaveAppUser(ctx, u)
}

// Company creates a company managed by manager that employs employees.
func (s *Seeder) Company(ctx context.Context, manager kernel.UUID, employees ...kernel.UUID) (*party.Company, error) {
	s.seq++
	c, err := party.NewCompany(kernel.NewUUID(), fmt.Sprintf("EIN-%06d", s.seq), fmt.Sprintf("Company %d", s.seq), manager)
	if err != nil {
		return nil, err
	}
	return c, s.Directory.SaveCompany(ctx, c, employees...)
}

func (s *Seeder) Shipment(ctx context.Context, createdBy kernel.UUID, admins ...kernel.UUID) (*shipment.Shipment, error) {
	sh, err := shipment.NewShipment(kernel.NewUUID(), "shipment", createdBy)
	if err != nil {
		return nil, err
	}
	for _, a := range admins {
		if err = sh.AddAdmin(a); err != nil {
			return nil, err
		}
	}
	return sh, s.Directory.SaveShipment(ctx, sh)
}

func (s *Seeder) Facility(ctx context.Context, owner kernel.UUID) (*shipment.Facility, error) {
	s.seq++
	f, err := shipment.NewFacility(kernel.NewUUID(), owner, fmt.Sprintf("Facility %d", s.seq), "1 Dock Rd")
	if err != nil {
		return nil, err
	}
	return f, s.Directory.SaveFacility(ctx, f)
}
