package http

import (
	"context"
	"log/slog"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// APIBasePath prefixes every route declared in api/openapi.yml.
const APIBasePath = "/api/v1"

// CommandHandler is satisfied by every command handler of the application layer.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every query handler of the application layer.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateLoad          CommandHandler[commands.CreateLoadCommand]
	UpdateLoadStatus    CommandHandler[commands.UpdateLoadStatusCommand]
	ManageLoad          CommandHandler[commands.ManageLoadCommand]
	CreateOffer         CommandHandler[commands.CreateOfferCommand]
	CounterOffer        CommandHandler[commands.CounterOfferCommand]
	RespondOffer        CommandHandler[commands.RespondOfferCommand]
	AgreeFinalAgreement CommandHandler[commands.AgreeFinalAgreementCommand]

	GetLoad         QueryHandler[queries.GetLoadQuery, queries.LoadView]
	ListLoads       QueryHandler[queries.ListLoadsQuery, []queries.LoadView]
	ListOffers      QueryHandler[queries.ListOffersQuery, []queries.OfferView]
	AgreementStatus QueryHandler[queries.AgreementStatusQuery, queries.AgreementStatus]
	Dashboard       QueryHandler[queries.GetDashboardQuery, queries.Dashboard]
	MyCompany       QueryHandler[queries.GetMyCompanyQuery, queries.CompanyView]
}

// Server implements the generated ServerInterface. It translates requests
// into commands and queries and their results into the contract's models.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the HTTP adapter over the given use cases.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http")}
}

// NewEcho builds the echo instance with error mapping, request logging,
// contract validation and every route registered. It fails only when the
// embedded OpenAPI document cannot be loaded.
func (s *Server) NewEcho() (*echo.Echo, error) {
	contract, err := loadContract()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	s.Register(e, contract)
	return e, nil
}

// Register mounts the health check, the API documentation and the
// /api/v1 routes generated from the contract.
func (s *Server) Register(e *echo.Echo, c *contract) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", c.docsHandler())

	api := e.Group(APIBasePath, requireAppUser, c.validateRequest)
	servers.RegisterHandlers(api, s)
}
