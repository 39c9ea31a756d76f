package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/notify"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/agreementrepo"
	"freight/internal/adapters/out/postgres/partyrepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Notifier is a ports.Notifier holding broker resources.
type Notifier interface {
	ports.Notifier
	io.Closer
}

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	directory  *partyrepo.GormDirectory
	agreements *agreementrepo.GormFinalAgreements
	notifier   Notifier
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, n Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  partyrepo.NewGormDirectory(gormDB),
		agreements: agreementrepo.NewGormFinalAgreements(gormDB),
		notifier:   n,
	}
}

// OpenDatabase connects with slog query logging and migrates the schema.
func OpenDatabase(cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         postgres.NewSlogLogger(logger, cfg.LogLevel <= slog.LevelDebug),
	})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// NewNotifier builds the transport selected by cfg.Notifier.
func NewNotifier(cfg Config, logger *slog.Logger) (Notifier, error) {
	switch cfg.Notifier {
	case NotifierKafka:
		return notify.NewKafkaNotifier(cfg.KafkaHost, cfg.KafkaTopic, logger), nil
	case NotifierRabbitMQ:
		n, err := notify.DialRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQQueue, logger)
		if err != nil {
			return nil, err
		}
		return n, nil
	case NotifierLog:
		return notify.NewLogNotifier(logger), nil
	}
	return nil, errors.New("unknown notifier " + cfg.Notifier)
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.uowFactory, c.directory)
}

func (c *CompositionRoot) CreateUpdateLoadStatusCommandHandler() commands.UpdateLoadStatusCommandHandler {
	return commands.NewUpdateLoadStatusCommandHandler(c.uowFactory, c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateManageLoadCommandHandler() commands.ManageLoadCommandHandler {
	return commands.NewManageLoadCommandHandler(c.uowFactory, c.directory)
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	return commands.NewCreateOfferCommandHandler(c.uowFactory, c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCounterOfferCommandHandler() commands.CounterOfferCommandHandler {
	return commands.NewCounterOfferCommandHandler(c.uowFactory, c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRespondOfferCommandHandler() commands.RespondOfferCommandHandler {
	return commands.NewRespondOfferCommandHandler(c.uowFactory, c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAgreeFinalAgreementCommandHandler() commands.AgreeFinalAgreementCommandHandler {
	return commands.NewAgreeFinalAgreementCommandHandler(c.uowFactory, c.directory, c.agreements)
}

func (c *CompositionRoot) CreatePurgeExpiredLoadsCommandHandler() commands.PurgeExpiredLoadsCommandHandler {
	return commands.NewPurgeExpiredLoadsCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLoadsQueryHandler() queries.ListLoadsQueryHandler {
	return queries.NewListLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOffersQueryHandler() queries.ListOffersQueryHandler {
	return queries.NewListOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAgreementStatusQueryHandler() queries.AgreementStatusQueryHandler {
	return queries.NewAgreementStatusQueryHandler(c.gormDB, c.agreements)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(
		queries.NewGormDashboardReader(c.gormDB),
		c.cfg.DashboardBranchTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetMyCompanyQueryHandler() queries.GetMyCompanyQueryHandler {
	return queries.NewGetMyCompanyQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeExpiredLoadsCommandHandler(),
		c.cfg.RetentionSchedule,
		c.cfg.Retention,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateLoad:          c.CreateCreateLoadCommandHandler(),
		UpdateLoadStatus:    c.CreateUpdateLoadStatusCommandHandler(),
		ManageLoad:          c.CreateManageLoadCommandHandler(),
		CreateOffer:         c.CreateCreateOfferCommandHandler(),
		CounterOffer:        c.CreateCounterOfferCommandHandler(),
		RespondOffer:        c.CreateRespondOfferCommandHandler(),
		AgreeFinalAgreement: c.CreateAgreeFinalAgreementCommandHandler(),
		GetLoad:             c.CreateGetLoadQueryHandler(),
		ListLoads:           c.CreateListLoadsQueryHandler(),
		ListOffers:          c.CreateListOffersQueryHandler(),
		AgreementStatus:     c.CreateAgreementStatusQueryHandler(),
		Dashboard:           c.CreateGetDashboardQueryHandler(),
		MyCompany:           c.CreateGetMyCompanyQueryHandler(),
	}, c.logger)
}

// Close releases the notifier and the database pool.
func (c *CompositionRoot) Close(_ context.Context) error {
	var errs []error
	if c.notifier != nil {
		errs = append(errs, c.notifier.Close())
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	} else {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
