package queries

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrGetMyCompanyQueryIsNotConstructed = errors.New(
	"GetMyCompanyQuery must be created via NewGetMyCompanyQuery constructor",
)

// ErrNoCompany is returned to users that must belong to a company first.
var ErrNoCompany = errs.NewValueIsInvalidErrorWithCause(
	"company",
	errors.New("create or join a company first"),
)

// RequireCompany resolves the requester's company and turns a missing one
// into ErrNoCompany.
func RequireCompany(ctx context.Context, directory ports.Directory, appUserID kernel.UUID) (*party.Company, error) {
	c, err := directory.CompanyOf(ctx, appUserID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: app user %s", ErrNoCompany, appUserID)
	}
	return c, err
}

type GetMyCompanyQuery struct {
	requester kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMyCompanyQuery(requester kernel.UUID) (GetMyCompanyQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetMyCompanyQuery{}, err
	}
	return GetMyCompanyQuery{requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetMyCompanyQueryIsNotConstructed)
}

// CompanyView describes the requester's company and whether it manages it.
type CompanyView struct {
	ID         kernel.UUID
	Identifier string
	Name       string
	ManagerID  kernel.UUID
	IsManager  bool
	Employees  int
}

type GetMyCompanyQueryHandler struct {
	directory ports.Directory
}

// NewGetMyCompanyQueryHandler creates a handler backed by the party directory.
func NewGetMyCompanyQueryHandler(directory ports.Directory) GetMyCompanyQueryHandler {
	return GetMyCompanyQueryHandler{directory: directory}
}

func (h GetMyCompanyQueryHandler) Handle(ctx context.Context, query GetMyCompanyQuery) (CompanyView, error) {
	if err := query.Validate(); err != nil {
		return CompanyView{}, err
	}

	c, err := RequireCompany(ctx, h.directory, query.requester)
	if err != nil {
		return CompanyView{}, err
	}
	roster, err := h.directory.Colleagues(ctx, query.requester)
	if err != nil {
		return CompanyView{}, err
	}
	return CompanyView{
		ID:         c.ID(),
		Identifier: c.Identifier(),
		Name:       c.Name(),
		ManagerID:  c.ManagerID(),
		IsManager:  c.ManagerID().IsEqual(query.requester),
		Employees:  len(roster),
	}, nil
}
