// Package agreementrepo is the document service's final-agreement store.
package agreementrepo

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FinalAgreementDTO struct {
	LoadID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DidCustomerAgree bool      `gorm:"not null;default:false"`
	DidCarrierAgree  bool      `gorm:"not null;default:false"`
	UpdatedAt        time.Time
}

func (FinalAgreementDTO) TableName() string {
	return "final_agreements"
}

// GormFinalAgreements implements ports.FinalAgreements.
type GormFinalAgreements struct {
	db *gorm.DB
}

func NewGormFinalAgreements(db *gorm.DB) *GormFinalAgreements {
	return &GormFinalAgreements{db: db}
}

func (r *GormFinalAgreements) Get(ctx context.Context, loadID kernel.UUID) (ports.FinalAgreement, error) {
	if err := loadID.Validate(); err != nil {
		return ports.FinalAgreement{}, err
	}

	agreement := ports.FinalAgreement{LoadID: loadID}
	var dto FinalAgreementDTO
	err := r.db.WithContext(ctx).First(&dto, "load_id = ?", loadID.Bytes()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return agreement, nil
	case err != nil:
		return ports.FinalAgreement{}, errors.Wrap(err, "select final agreement")
	}

	agreement.DidCustomerAgree = dto.DidCustomerAgree
	agreement.DidCarrierAgree = dto.DidCarrierAgree
	return agreement, nil
}

// SetPartyAgreed raises one flag, creating the agreement on first use.
func (r *GormFinalAgreements) SetPartyAgreed(ctx context.Context, loadID kernel.UUID, p ports.AgreementParty) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	dto := FinalAgreementDTO{LoadID: loadID.Bytes(), UpdatedAt: time.Now().UTC()}
	var column string
	switch p {
	case ports.AgreementCustomer:
		dto.DidCustomerAgree, column = true, "did_customer_agree"
	case ports.AgreementCarrier:
		dto.DidCarrierAgree, column = true, "did_carrier_agree"
	default:
		return errs.NewValueIsInvalidErrorWithCause("party", fmt.Errorf("%q is not customer or carrier", p))
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "load_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(&dto).Error
	return errors.Wrap(err, "upsert final agreement")
}
