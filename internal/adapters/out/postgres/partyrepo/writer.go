package partyrepo

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The directory is maintained by account and company management outside the
// brokerage core. These writers upsert its rows.

func (d *GormDirectory) SaveAppUser(ctx context.Context, u *party.AppUser) error {
	if err := u.Validate(); err != nil {
		return err
	}
	dto := AppUserDTO{ID: u.ID().Bytes(), UserType: u.UserType().String(), SelectedRole: u.SelectedRole().String()}
	return d.upsert(ctx, &dto, "app user")
}

func (d *GormDirectory) SaveProfile(ctx context.Context, p *party.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := ProfileDTO{ID: p.ID().Bytes(), AppUserID: p.AppUserID().Bytes(), Role: int(p.Role()), Active: p.IsActive()}
	return d.upsert(ctx, &dto, "profile")
}

// SaveCompany stores the company and adds employees to its roster.
func (d *GormDirectory) SaveCompany(ctx context.Context, c *party.Company, employees ...kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dto := CompanyDTO{ID: c.ID().Bytes(), Identifier: c.Identifier(), Name: c.Name(), ManagerID: c.ManagerID().Bytes()}
		if err := upsert(tx, &dto, "company"); err != nil {
			return err
		}
		for _, e := range employees {
			member := CompanyEmployeeDTO{CompanyID: dto.ID, AppUserID: e.Bytes()}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
				return errors.Wrap(err, "insert company employee")
			}
		}
		return nil
	})
}

// SaveShipment stores the shipment and replaces its admin delegations.
func (d *GormDirectory) SaveShipment(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dto := ShipmentDTO{ID: s.ID().Bytes(), Name: s.Name(), CreatedBy: s.CreatedBy().Bytes()}
		if err := upsert(tx, &dto, "shipment"); err != nil {
			return err
		}
		if err := tx.Where("shipment_id = ?", dto.ID).Delete(&ShipmentAdminDTO{}).Error; err != nil {
			return errors.Wrap(err, "delete shipment admins")
		}
		for _, admin := range s.Admins() {
			row := ShipmentAdminDTO{ShipmentID: dto.ID, AppUserID: admin.Bytes()}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "insert shipment admin")
			}
		}
		return nil
	})
}

func (d *GormDirectory) SaveFacility(ctx context.Context, f *shipment.Facility) error {
	dto := FacilityDTO{ID: f.ID().Bytes(), OwnerID: f.OwnerID().Bytes(), Name: f.Name(), Address: f.Address()}
	return d.upsert(ctx, &dto, "facility")
}

func (d *GormDirectory) upsert(ctx context.Context, dto any, entity string) error {
	return upsert(d.db.WithContext(ctx), dto, entity)
}

func upsert(db *gorm.DB, dto any, entity string) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause(entity, err)
	}
	return errors.Wrapf(err, "upsert %s", entity)
}
