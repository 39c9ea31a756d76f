package partyrepo

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requesterCompany resolves the company of @requester: the one it manages,
// otherwise the one employing it.
const requesterCompany = `COALESCE(
	(SELECT c.id FROM companies c WHERE c.manager_id = @requester ORDER BY c.id LIMIT 1),
	(SELECT ce.company_id FROM company_employees ce WHERE ce.app_user_id = @requester ORDER BY ce.company_id LIMIT 1)
)`

// GormDirectory implements ports.Directory on the directory tables.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) AppUser(ctx context.Context, id kernel.UUID) (*party.AppUser, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var dto AppUserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "app user", id)
	}
	return appUserToDomain(dto)
}

// ResolveRole returns the active profiles of the AppUser. An unknown AppUser
// is NotFound; a known one without profiles yields only the staff flags.
func (d *GormDirectory) ResolveRole(ctx context.Context, appUserID kernel.UUID) (party.RoleResolution, error) {
	u, err := d.AppUser(ctx, appUserID)
	if err != nil {
		return party.RoleResolution{}, err
	}

	var dtos []ProfileDTO
	if err = d.db.WithContext(ctx).
		Where("app_user_id = ? AND active", appUserID.Bytes()).
		Find(&dtos).Error; err != nil {
		return party.RoleResolution{}, errors.Wrap(err, "select profiles")
	}

	resolution := party.RoleResolution{IsManager: u.IsManager(), IsSupport: u.IsSupport()}
	for _, dto := range dtos {
		p, pErr := profileToDomain(dto)
		if pErr != nil {
			return party.RoleResolution{}, pErr
		}
		switch p.Role() {
		case party.RoleCarrier:
			resolution.Carrier = p
		case party.RoleDispatcher:
			resolution.Dispatcher = p
		case party.RoleShipmentParty:
			resolution.ShipmentParty = p
		case party.UnknownRole, party.RoleManager, party.RoleSupport:
		}
	}
	return resolution, nil
}

func (d *GormDirectory) CompanyOf(ctx context.Context, appUserID kernel.UUID) (*party.Company, error) {
	if err := appUserID.Validate(); err != nil {
		return nil, err
	}
	var dto CompanyDTO
	err := d.db.WithContext(ctx).
		Where("id = "+requesterCompany, sql.Named("requester", appUserID.Bytes())).
		First(&dto).Error
	if err != nil {
		return nil, notFound(err, "company", appUserID)
	}
	return companyToDomain(dto)
}

// Colleagues returns the employees and manager of the AppUser's company.
func (d *GormDirectory) Colleagues(ctx context.Context, appUserID kernel.UUID) (party.Employees, error) {
	if err := appUserID.Validate(); err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	err := d.db.WithContext(ctx).Raw(`
		WITH company AS (SELECT `+requesterCompany+` AS id)
		SELECT ce.app_user_id FROM company_employees ce JOIN company ON ce.company_id = company.id
		UNION
		SELECT c.manager_id FROM companies c JOIN company ON c.id = company.id
	`, sql.Named("requester", appUserID.Bytes())).Scan(&ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "select colleagues")
	}

	members := make([]kernel.UUID, 0, len(ids))
	for _, raw := range ids {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		members = append(members, id)
	}
	return party.NewEmployees(members...), nil
}

func (d *GormDirectory) Profile(ctx context.Context, id kernel.UUID) (*party.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var dto ProfileDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "profile", id)
	}
	return profileToDomain(dto)
}

func (d *GormDirectory) Shipment(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var dto ShipmentDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "shipment", id)
	}
	var admins []ShipmentAdminDTO
	if err := d.db.WithContext(ctx).Where("shipment_id = ?", id.Bytes()).Find(&admins).Error; err != nil {
		return nil, errors.Wrap(err, "select shipment admins")
	}
	return shipmentToDomain(dto, admins)
}

func (d *GormDirectory) Facility(ctx context.Context, id kernel.UUID) (*shipment.Facility, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var dto FacilityDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "facility", id)
	}
	return facilityToDomain(dto)
}

func notFound(err error, entity string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errors.Wrapf(err, "select %s", entity)
}
