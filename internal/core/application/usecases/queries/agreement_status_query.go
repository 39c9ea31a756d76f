package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrAgreementStatusQueryIsNotConstructed = errors.New(
	"AgreementStatusQuery must be created via NewAgreementStatusQuery constructor",
)

// AgreementStatusQuery reports the negotiation legs of a load and whether each
// side signed the final agreement.
type AgreementStatusQuery struct {
	loadID    kernel.UUID
	requester kernel.UUID

	guard guard.ConstructorGuard
}

func NewAgreementStatusQuery(loadID, requester kernel.UUID) (AgreementStatusQuery, error) {
	if err := errors.Join(loadID.Validate(), requester.Validate()); err != nil {
		return AgreementStatusQuery{}, err
	}
	return AgreementStatusQuery{loadID: loadID, requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q AgreementStatusQuery) Validate() error {
	return q.guard.Validate(ErrAgreementStatusQueryIsNotConstructed)
}

type AgreementStatus struct {
	LoadID           kernel.UUID
	CustomerLeg      load.LegState
	CarrierLeg       load.LegState
	DidCustomerAgree bool
	DidCarrierAgree  bool
}

// ReadyForSignature reports whether both legs are accepted.
func (s AgreementStatus) ReadyForSignature() bool {
	return s.CustomerLeg == load.LegAccepted && s.CarrierLeg == load.LegAccepted
}

type AgreementStatusQueryHandler struct {
	db         *gorm.DB
	agreements ports.FinalAgreements
}

// NewAgreementStatusQueryHandler creates a handler that joins offer legs with
// the stored final agreement.
func NewAgreementStatusQueryHandler(db *gorm.DB, agreements ports.FinalAgreements) AgreementStatusQueryHandler {
	return AgreementStatusQueryHandler{db: db, agreements: agreements}
}

func (h AgreementStatusQueryHandler) Handle(ctx context.Context, query AgreementStatusQuery) (AgreementStatus, error) {
	if err := query.Validate(); err != nil {
		return AgreementStatus{}, err
	}
	if _, err := findLoad(ctx, h.db, query.loadID, query.requester); err != nil {
		return AgreementStatus{}, err
	}

	// Leg states follow LegOpen(0) < LegPending(1) < LegAccepted(2); a
	// rejected thread leaves its leg open.
	var legs []struct {
		Direction string
		State     int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT direction, MAX(CASE status WHEN @accepted THEN 2 WHEN @pending THEN 1 ELSE 0 END) AS state
		FROM offers
		WHERE load_id = @load
		GROUP BY direction
	`,
		namedUUID("load", query.loadID),
		sql.Named("accepted", int(offer.Accepted)),
		sql.Named("pending", int(offer.Pending)),
	).Scan(&legs).Error
	if err != nil {
		return AgreementStatus{}, err
	}

	status := AgreementStatus{LoadID: query.loadID, CustomerLeg: load.LegOpen, CarrierLeg: load.LegOpen}
	for _, leg := range legs {
		switch leg.Direction {
		case offer.ToCustomer.String():
			status.CustomerLeg = load.LegState(leg.State)
		case offer.ToCarrier.String():
			status.CarrierLeg = load.LegState(leg.State)
		}
	}

	agreement, err := h.agreements.Get(ctx, query.loadID)
	if err != nil {
		return AgreementStatus{}, err
	}
	status.DidCustomerAgree = agreement.DidCustomerAgree
	status.DidCarrierAgree = agreement.DidCarrierAgree
	return status, nil
}
