package http

import (
	"fmt"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/shopspring/decimal"
)

// fromID converts a contract id into a domain id. The nil UUID is rejected.
func fromID(id servers.Id) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// optionalDecimal parses a measure that may be omitted; omitted means zero.
func optionalDecimal(name string, raw *servers.Decimal) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed %s %q", name, *raw)
	}
	return d, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func toLoad(v queries.LoadView) servers.Load {
	r := servers.Load{
		Id:                  v.ID.Bytes(),
		Name:                v.Name,
		ShipmentId:          v.ShipmentID.Bytes(),
		Status:              v.Status.String(),
		CreatedBy:           v.CreatedBy.Bytes(),
		CustomerProfileId:   v.CustomerProfileID.Bytes(),
		ShipperProfileId:    v.ShipperProfileID.Bytes(),
		ConsigneeProfileId:  v.ConsigneeProfileID.Bytes(),
		DispatcherProfileId: v.DispatcherProfileID.Bytes(),
		PickUpLocationId:    v.PickUpLocation.Bytes(),
		DestinationId:       v.Destination.Bytes(),
		PickUpDate:          v.PickUpDate,
		DeliveryDate:        v.DeliveryDate,
		ActualDeliveryDate:  v.ActualDeliveryDate,
		Weight:              v.Weight.String(),
		Quantity:            v.Quantity.String(),
		Commodity:           v.Commodity,
		EquipmentType:       v.EquipmentType,
		LoadType:            v.LoadType.String(),
		Draft:               v.IsDraft,
		CreatedAt:           v.CreatedAt,
	}
	if v.CarrierProfileID != nil {
		carrier := v.CarrierProfileID.Bytes()
		r.CarrierProfileId = &carrier
	}
	return r
}

func toOffer(v queries.OfferView) servers.Offer {
	return servers.Offer{
		Id:                    v.ID.Bytes(),
		LoadId:                v.LoadID.Bytes(),
		Direction:             v.Direction.String(),
		DispatcherProfileId:   v.DispatcherProfileID.Bytes(),
		CounterpartyProfileId: v.CounterpartyProfileID.Bytes(),
		Initial:               v.Initial.String(),
		Current:               v.Current.String(),
		Status:                v.Status.String(),
		LastMover:             v.LastMover.String(),
		CreatedAt:             v.CreatedAt,
		UpdatedAt:             v.UpdatedAt,
	}
}

func toAgreementStatus(s queries.AgreementStatus) servers.AgreementStatus {
	return servers.AgreementStatus{
		LoadId:            s.LoadID.Bytes(),
		CustomerLeg:       s.CustomerLeg.String(),
		CarrierLeg:        s.CarrierLeg.String(),
		DidCustomerAgree:  s.DidCustomerAgree,
		DidCarrierAgree:   s.DidCarrierAgree,
		ReadyForSignature: s.ReadyForSignature(),
	}
}

// toDashboard always renders the lists as arrays, never as null.
func toDashboard(d queries.Dashboard) servers.Dashboard {
	r := servers.Dashboard{
		Year:           d.Year,
		TotalLoads:     d.TotalLoads,
		StatusCards:    make([]servers.StatusCard, 0, len(d.StatusCards)),
		Monthly:        make([]servers.MonthlyPoint, 0, len(d.Monthly)),
		TypeWeight:     make([]servers.TypeWeightBucket, 0, len(d.TypeWeight)),
		TopEquipment:   make([]servers.EquipmentCount, 0, len(d.TopEquipment)),
		TopDispatchers: make([]servers.DispatcherRevenue, 0, len(d.TopDispatchers)),
		Punctuality: servers.Punctuality{
			OnTime:      d.Punctuality.OnTime,
			Late:        d.Punctuality.Late,
			OnTimeRatio: d.Punctuality.OnTimeRatio(),
		},
		Revenue: d.Revenue.String(),
	}
	if len(d.Degraded) > 0 {
		degraded := append([]string(nil), d.Degraded...)
		r.Degraded = &degraded
	}
	for _, c := range d.StatusCards {
		r.StatusCards = append(r.StatusCards, servers.StatusCard{Status: c.Status.String(), Count: c.Count})
	}
	for _, m := range d.Monthly {
		r.Monthly = append(r.Monthly, servers.MonthlyPoint{Month: m.Month, Created: m.Created, Delivered: m.Delivered})
	}
	for _, b := range d.TypeWeight {
		r.TypeWeight = append(r.TypeWeight, servers.TypeWeightBucket{LoadType: b.LoadType.String(), WeightClass: b.WeightClass, Count: b.Count})
	}
	for _, e := range d.TopEquipment {
		r.TopEquipment = append(r.TopEquipment, servers.EquipmentCount{EquipmentType: e.EquipmentType, Count: e.Count})
	}
	for _, t := range d.TopDispatchers {
		r.TopDispatchers = append(r.TopDispatchers, servers.DispatcherRevenue{
			DispatcherProfileId: t.DispatcherProfileID.Bytes(),
			Revenue:             t.Revenue.String(),
			Loads:               t.Loads,
		})
	}
	return r
}

func toCompany(v queries.CompanyView) servers.Company {
	return servers.Company{
		Id:         v.ID.Bytes(),
		Identifier: v.Identifier,
		Name:       v.Name,
		ManagerId:  v.ManagerID.Bytes(),
		IsManager:  v.IsManager,
		Employees:  v.Employees,
	}
}
