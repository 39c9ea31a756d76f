// Package partyrepo stores the party directory: app users and their role
// profiles, companies with their employees, shipments with delegated admins,
// and facilities.
package partyrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type AppUserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserType     string    `gorm:"size:64;not null"`
	SelectedRole string    `gorm:"size:32;not null"`
}

func (AppUserDTO) TableName() string { return "app_users" }

// ProfileDTO is a Carrier, Dispatcher or ShipmentParty record; one per
// AppUser and role.
type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppUserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_profiles_app_user_role"`
	Role      int       `gorm:"uniqueIndex:idx_profiles_app_user_role"`
	Active    bool      `gorm:"not null;default:true"`
}

func (ProfileDTO) TableName() string { return "profiles" }

type CompanyDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identifier string    `gorm:"size:32;uniqueIndex"`
	Name       string    `gorm:"size:255"`
	ManagerID  uuid.UUID `gorm:"type:uuid;index"`
}

func (CompanyDTO) TableName() string { return "companies" }

// CompanyEmployeeDTO is the membership join. One company per AppUser is a
// business rule and is not enforced here.
type CompanyEmployeeDTO struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppUserID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (CompanyEmployeeDTO) TableName() string { return "company_employees" }

type ShipmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index"`
}

func (ShipmentDTO) TableName() string { return "shipments" }

type ShipmentAdminDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppUserID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (ShipmentAdminDTO) TableName() string { return "shipment_admins" }

type FacilityDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string    `gorm:"size:255"`
	Address string    `gorm:"size:512"`
}

func (FacilityDTO) TableName() string { return "facilities" }

// Models lists every table of the directory for migrations.
func Models() []any {
	return []any{
		&AppUserDTO{},
		&ProfileDTO{},
		&CompanyDTO{},
		&CompanyEmployeeDTO{},
		&ShipmentDTO{},
		&ShipmentAdminDTO{},
		&FacilityDTO{},
	}
}

func appUserToDomain(dto AppUserDTO) (*party.AppUser, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userType, err := party.ParseUserType(dto.UserType)
	if err != nil {
		return nil, err
	}
	selected, err := party.ParseRole(dto.SelectedRole)
	if err != nil {
		return nil, err
	}
	return party.NewAppUser(id, userType, selected)
}

func profileToDomain(dto ProfileDTO) (*party.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	appUserID, err := kernel.UUIDFromBytes(dto.AppUserID[:])
	if err != nil {
		return nil, err
	}
	return party.RestoreProfile(id, appUserID, party.Role(dto.Role), dto.Active)
}

func companyToDomain(dto CompanyDTO) (*party.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}
	return party.NewCompany(id, dto.Identifier, dto.Name, managerID)
}

func shipmentToDomain(dto ShipmentDTO, admins []ShipmentAdminDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	adminIDs := make([]kernel.UUID, 0, len(admins))
	for _, a := range admins {
		adminID, adminErr := kernel.UUIDFromBytes(a.AppUserID[:])
		if adminErr != nil {
			return nil, adminErr
		}
		adminIDs = append(adminIDs, adminID)
	}
	return shipment.RestoreShipment(id, dto.Name, createdBy, adminIDs)
}

func facilityToDomain(dto FacilityDTO) (*shipment.Facility, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	return shipment.NewFacility(id, ownerID, dto.Name, dto.Address)
}
