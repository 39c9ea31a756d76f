package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// AgreementParty is the side that signs the final agreement.
type AgreementParty string

const (
	AgreementCustomer AgreementParty = "customer"
	AgreementCarrier  AgreementParty = "carrier"
)

// FinalAgreement is the per-load document state the offer engine reads.
type FinalAgreement struct {
	LoadID           kernel.UUID
	DidCustomerAgree bool
	DidCarrierAgree  bool
}

// FinalAgreements is the document service owning final-agreement storage.
type FinalAgreements interface {
	// Get returns the agreement for a load; a load without one yields a
	// zero-valued agreement.
	Get(ctx context.Context, loadID kernel.UUID) (FinalAgreement, error)
	SetPartyAgreed(ctx context.Context, loadID kernel.UUID, p AgreementParty) error
}
