package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load was not built by NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")

	// ErrSameFacility is returned when pick-up and destination reference the same facility.
	ErrSameFacility = errs.NewValueIsInvalidErrorWithCause(
		"destination", errors.New("pick up location and destination must be different facilities"))

	// ErrDeliveryNotAfterPickUp is returned when delivery_date <= pick_up_date.
	ErrDeliveryNotAfterPickUp = errs.NewValueIsInvalidErrorWithCause(
		"delivery_date", errors.New("delivery date must be after pick up date"))

	// ErrPickUpBeforeCreation is returned when pick_up_date precedes the creation day.
	ErrPickUpBeforeCreation = errs.NewValueIsInvalidErrorWithCause(
		"pick_up_date", errors.New("pick up date must not precede the creation date"))
)

// PartyRef points at a party profile on a load together with the AppUser
// that owns it. The AppUser is kept so visibility can be decided by company
// membership without resolving profiles.
type PartyRef struct {
	ProfileID kernel.UUID
	AppUserID kernel.UUID
}

// NewPartyRef builds a reference from an active profile of the expected role.
func NewPartyRef(p *party.Profile, role party.Role) (PartyRef, error) {
	if err := p.RequireRole(role); err != nil {
		return PartyRef{}, err
	}
	return PartyRef{ProfileID: p.ID(), AppUserID: p.AppUserID()}, nil
}

// IsEqual compares the profile identity.
func (r PartyRef) IsEqual(other PartyRef) bool {
	return r.ProfileID.IsEqual(other.ProfileID)
}

func (r PartyRef) validate(name string) error {
	if r.ProfileID.IsZero() || r.AppUserID.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Parties are the roles attached to a load. Carrier is nil until assignment.
type Parties struct {
	Customer   PartyRef
	Shipper    PartyRef
	Consignee  PartyRef
	Dispatcher PartyRef
	Carrier    *PartyRef
}

func (p Parties) validate() error {
	return errors.Join(
		p.Customer.validate("customer"),
		p.Shipper.validate("shipper"),
		p.Consignee.validate("consignee"),
		p.Dispatcher.validate("dispatcher"),
	)
}

// Freight describes what is being moved.
type Freight struct {
	Length        decimal.Decimal
	Width         decimal.Decimal
	Height        decimal.Decimal
	Weight        decimal.Decimal
	Quantity      decimal.Decimal
	Commodity     string
	EquipmentType string
	Type          Type
}

// maxMeasure is the largest dimension the loads table stores (numeric(12,2)).
var maxMeasure = decimal.RequireFromString("9999999999.99")

func (f Freight) validate() error {
	measure := func(name string, v decimal.Decimal) error {
		if v.IsNegative() || v.GreaterThan(maxMeasure) {
			return errs.NewValueIsOutOfRangeError(name, v.String(), "0", maxMeasure.String())
		}
		if !v.Equal(v.Round(2)) {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s has more than 2 decimal places", v))
		}
		return nil
	}
	return errors.Join(
		measure("length", f.Length),
		measure("width", f.Width),
		measure("height", f.Height),
		measure("weight", f.Weight),
		measure("quantity", f.Quantity),
		f.Type.Validate(),
	)
}

// Schedule holds the planned pick-up and delivery dates.
type Schedule struct {
	PickUpDate   time.Time
	DeliveryDate time.Time
}

// NewLoadParams carries everything needed to create a load.
type NewLoadParams struct {
	ID             kernel.UUID
	ShipmentID     kernel.UUID
	CreatedBy      kernel.UUID
	Parties        Parties
	PickUpLocation kernel.UUID
	Destination    kernel.UUID
	Schedule       Schedule
	Freight        Freight
	Draft          bool
}

// Load is the aggregate root for one shipment transaction between parties.
// It owns the status state machine and the creation-time invariants:
//   - delivery date strictly after pick-up date
//   - pick-up date not before the creation day
//   - pick-up location and destination are different facilities
//   - exactly one dispatcher, customer, shipper and consignee; carrier optional
type Load struct {
	id                 kernel.UUID
	name               string
	shipmentID         kernel.UUID
	createdBy          kernel.UUID
	parties            Parties
	pickUpLocation     kernel.UUID
	destination        kernel.UUID
	schedule           Schedule
	actualDeliveryDate *time.Time
	freight            Freight
	status             Status
	isDraft            bool
	isDeleted          bool
	createdAt          time.Time
	updatedAt          time.Time
	version            int

	guard guard.ConstructorGuard
}

// NewLoad validates params against the creation invariants. now is the
// creation timestamp; it also anchors the "pick-up not in the past" check.
func NewLoad(params NewLoadParams, now time.Time) (*Load, error) {
	now = now.UTC()
	l := &Load{
		id:             params.ID,
		shipmentID:     params.ShipmentID,
		createdBy:      params.CreatedBy,
		parties:        params.Parties,
		pickUpLocation: params.PickUpLocation,
		destination:    params.Destination,
		schedule:       Schedule{PickUpDate: params.Schedule.PickUpDate.UTC(), DeliveryDate: params.Schedule.DeliveryDate.UTC()},
		freight:        params.Freight,
		status:         Created,
		isDraft:        params.Draft,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.validateIdentity(),
		l.validateLocations(),
		l.validateSchedule(now),
		l.parties.validate(),
		l.freight.validate(),
	); err != nil {
		return nil, err
	}

	l.name = GenerateName(l.id, now)
	l.freight.Commodity = strings.TrimSpace(l.freight.Commodity)
	l.freight.EquipmentType = strings.TrimSpace(l.freight.EquipmentType)
	return l, nil
}

// Snapshot is the persisted form used by RestoreLoad.
type Snapshot struct {
	ID                 kernel.UUID
	Name               string
	ShipmentID         kernel.UUID
	CreatedBy          kernel.UUID
	Parties            Parties
	PickUpLocation     kernel.UUID
	Destination        kernel.UUID
	Schedule           Schedule
	ActualDeliveryDate *time.Time
	Freight            Freight
	Status             Status
	IsDraft            bool
	IsDeleted          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int
}

// RestoreLoad rebuilds a load from storage. The pick-up-not-in-the-past rule
// only applies at creation and is not re-checked here.
func RestoreLoad(s Snapshot) (*Load, error) {
	l := &Load{
		id:                 s.ID,
		name:               s.Name,
		shipmentID:         s.ShipmentID,
		createdBy:          s.CreatedBy,
		parties:            s.Parties,
		pickUpLocation:     s.PickUpLocation,
		destination:        s.Destination,
		schedule:           s.Schedule,
		actualDeliveryDate: s.ActualDeliveryDate,
		freight:            s.Freight,
		status:             s.Status,
		isDraft:            s.IsDraft,
		isDeleted:          s.IsDeleted,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		version:            s.Version,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.validateIdentity(),
		l.validateLocations(),
		l.validateDateOrder(),
		l.parties.validate(),
		l.freight.validate(),
		l.status.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(l.name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return l, nil
}

// GenerateName derives the system name: L-<yyyymmdd>-<first 8 hex digits of id>.
func GenerateName(id kernel.UUID, createdAt time.Time) string {
	return fmt.Sprintf("L-%s-%s", createdAt.UTC().Format("20060102"), strings.ToUpper(id.String()[:8]))
}

// Validate ensures the load was built by NewLoad or RestoreLoad.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l *Load) ID() kernel.UUID                { return l.id }
func (l *Load) Name() string                   { return l.name }
func (l *Load) ShipmentID() kernel.UUID        { return l.shipmentID }
func (l *Load) CreatedBy() kernel.UUID         { return l.createdBy }
func (l *Load) Parties() Parties               { return l.parties }
func (l *Load) PickUpLocation() kernel.UUID    { return l.pickUpLocation }
func (l *Load) Destination() kernel.UUID       { return l.destination }
func (l *Load) Schedule() Schedule             { return l.schedule }
func (l *Load) ActualDeliveryDate() *time.Time { return l.actualDeliveryDate }
func (l *Load) Freight() Freight               { return l.freight }
func (l *Load) Status() Status                 { return l.status }
func (l *Load) IsDraft() bool                  { return l.isDraft }
func (l *Load) IsDeleted() bool                { return l.isDeleted }
func (l *Load) CreatedAt() time.Time           { return l.createdAt }
func (l *Load) UpdatedAt() time.Time           { return l.updatedAt }
func (l *Load) Version() int                   { return l.version }
func (l *Load) Carrier() *PartyRef             { return l.parties.Carrier }
func (l *Load) HasCarrier() bool               { return l.parties.Carrier != nil }
func (l *Load) Dispatcher() PartyRef           { return l.parties.Dispatcher }
func (l *Load) Customer() PartyRef             { return l.parties.Customer }
func (l *Load) IsEqual(other *Load) bool       { return other != nil && l.id.IsEqual(other.id) }

// CoreParticipants returns the AppUsers of customer, shipper, consignee and
// dispatcher, deduplicated and in that order.
func (l *Load) CoreParticipants() []kernel.UUID {
	return dedupe(
		l.parties.Customer.AppUserID,
		l.parties.Shipper.AppUserID,
		l.parties.Consignee.AppUserID,
		l.parties.Dispatcher.AppUserID,
	)
}

// PartyAppUsers returns every AppUser whose company may see the load:
// creator, customer, shipper, consignee, dispatcher and, when assigned, carrier.
func (l *Load) PartyAppUsers() []kernel.UUID {
	ids := []kernel.UUID{
		l.createdBy,
		l.parties.Customer.AppUserID,
		l.parties.Shipper.AppUserID,
		l.parties.Consignee.AppUserID,
		l.parties.Dispatcher.AppUserID,
	}
	if l.parties.Carrier != nil {
		ids = append(ids, l.parties.Carrier.AppUserID)
	}
	return dedupe(ids...)
}

// ApplyNegotiation recomputes the status from the leg states. It reports
// whether the status changed.
func (l *Load) ApplyNegotiation(customer, carrier LegState, now time.Time) (bool, error) {
	if err := l.requireLive(); err != nil {
		return false, err
	}
	next, err := l.status.Negotiate(customer, carrier)
	if err != nil {
		return false, err
	}
	if next == l.status {
		return false, nil
	}
	l.status = next
	l.touch(now)
	return true, nil
}

// RequireNegotiating fails unless offers may still change hands on the load.
func (l *Load) RequireNegotiating() error {
	if err := l.requireLive(); err != nil {
		return err
	}
	if !l.status.IsNegotiating() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("load %s is %s and no longer takes offers", l.name, l.status),
		)
	}
	return nil
}

// AssignCarrier attaches the carrier targeted by a carrier-side offer.
// Re-assigning the same carrier is a no-op; a different carrier is rejected
// while one is assigned.
func (l *Load) AssignCarrier(carrier PartyRef, now time.Time) error {
	if err := l.requireLive(); err != nil {
		return err
	}
	if err := carrier.validate("carrier"); err != nil {
		return err
	}
	if !l.status.IsNegotiating() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a carrier", l.status),
		)
	}
	if l.parties.Carrier != nil {
		if l.parties.Carrier.IsEqual(carrier) {
			return nil
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier",
			fmt.Errorf("load %s already has carrier %s", l.name, l.parties.Carrier.ProfileID),
		)
	}
	l.parties.Carrier = &carrier
	l.touch(now)
	return nil
}

// UnassignCarrier clears the carrier after its offer thread was rejected.
func (l *Load) UnassignCarrier(now time.Time) error {
	if err := l.requireLive(); err != nil {
		return err
	}
	if !l.status.IsNegotiating() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to unassign a carrier", l.status),
		)
	}
	l.parties.Carrier = nil
	l.touch(now)
	return nil
}

// UpdateStatus applies an explicit status request (In Transit, Delivered or
// Canceled). Delivered stamps the actual delivery date.
func (l *Load) UpdateStatus(target Status, now time.Time) error {
	if err := l.requireLive(); err != nil {
		return err
	}
	next, err := l.status.RequestTransition(target)
	if err != nil {
		return err
	}
	l.status = next
	if next == Delivered {
		delivered := now.UTC()
		l.actualDeliveryDate = &delivered
	}
	l.touch(now)
	return nil
}

// IsDeliveredOnTime reports whether a delivered load arrived by its planned delivery date.
func (l *Load) IsDeliveredOnTime() bool {
	return l.status == Delivered && l.actualDeliveryDate != nil && !l.actualDeliveryDate.After(l.schedule.DeliveryDate)
}

// Publish clears the draft flag.
func (l *Load) Publish(now time.Time) error {
	if err := l.requireLive(); err != nil {
		return err
	}
	if !l.isDraft {
		return errs.NewValueIsInvalidErrorWithCause("is_draft", fmt.Errorf("load %s is not a draft", l.name))
	}
	l.isDraft = false
	l.touch(now)
	return nil
}

// SoftDelete flags the load for the retention sweep.
func (l *Load) SoftDelete(now time.Time) error {
	if l.isDeleted {
		return errs.NewConflictErrorWithCause("load", fmt.Errorf("load %s is already deleted", l.name))
	}
	l.isDeleted = true
	l.touch(now)
	return nil
}

// IsExpired is the retention predicate: deleted and untouched for the
// retention window, or a draft older than the retention window.
func (l *Load) IsExpired(now time.Time, retention time.Duration) bool {
	cutoff := now.Add(-retention)
	return (l.isDeleted && l.updatedAt.Before(cutoff)) || (l.isDraft && l.createdAt.Before(cutoff))
}

// requireLive rejects changes to a soft-deleted load. Deleted loads are
// invisible to every reader, so they are reported as missing.
func (l *Load) requireLive() error {
	if l.isDeleted {
		return errs.NewObjectNotFoundErrorWithCause("load", l.id.String(), fmt.Errorf("load %s is deleted", l.name))
	}
	return nil
}

func (l *Load) touch(now time.Time) {
	l.updatedAt = now.UTC()
}

func (l *Load) validateIdentity() error {
	return errors.Join(l.id.Validate(), l.shipmentID.Validate(), l.createdBy.Validate())
}

func (l *Load) validateLocations() error {
	if err := errors.Join(l.pickUpLocation.Validate(), l.destination.Validate()); err != nil {
		return err
	}
	if l.pickUpLocation.IsEqual(l.destination) {
		return ErrSameFacility
	}
	return nil
}

func (l *Load) validateDateOrder() error {
	if l.schedule.PickUpDate.IsZero() {
		return errs.NewValueIsRequiredError("pick_up_date")
	}
	if !l.schedule.DeliveryDate.After(l.schedule.PickUpDate) {
		return ErrDeliveryNotAfterPickUp
	}
	return nil
}

func (l *Load) validateSchedule(now time.Time) error {
	if err := l.validateDateOrder(); err != nil {
		return err
	}
	if startOfDay(l.schedule.PickUpDate).Before(startOfDay(now)) {
		return ErrPickUpBeforeCreation
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dedupe(ids ...kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
