// Package queries holds the read side: set-based SQL over the store,
// filtered by what the requester's company may see.
package queries

import (
	"database/sql"

	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// requesterCompanySQL is the company of @requester: the one it manages,
// otherwise the one employing it. NULL when it has neither.
const requesterCompanySQL = `COALESCE(
	(SELECT c.id FROM companies c WHERE c.manager_id = @requester ORDER BY c.id LIMIT 1),
	(SELECT ce.company_id FROM company_employees ce WHERE ce.app_user_id = @requester ORDER BY ce.company_id LIMIT 1)
)`

// rosterSQL lists the AppUsers of the requester's company, manager included.
const rosterSQL = `(
	SELECT ce.app_user_id FROM company_employees ce WHERE ce.company_id = ` + requesterCompanySQL + `
	UNION
	SELECT c.manager_id FROM companies c WHERE c.id = ` + requesterCompanySQL + `
)`

// visibleLoadSQL is the visibility predicate for a row aliased l: the
// requester's company employs the creator, a party, the shipment creator or
// a shipment admin.
const visibleLoadSQL = `EXISTS (
	SELECT 1 FROM ` + rosterSQL + ` AS roster(app_user_id)
	WHERE roster.app_user_id IN (
		l.created_by,
		l.customer_app_user_id,
		l.shipper_app_user_id,
		l.consignee_app_user_id,
		l.dispatcher_app_user_id,
		l.carrier_app_user_id
	)
	OR roster.app_user_id = (SELECT s.created_by FROM shipments s WHERE s.id = l.shipment_id)
	OR roster.app_user_id IN (SELECT sa.app_user_id FROM shipment_admins sa WHERE sa.shipment_id = l.shipment_id)
)`

// actsForSQL reports whether @requester acts for the AppUser in column: it is
// that AppUser or a fellow employee.
func actsForSQL(column string) string {
	return `(` + column + ` = @requester OR ` + column + ` IN ` + rosterSQL + `)`
}

// VisibleLoads scopes a query over "loads AS l" to the rows requester may see.
func VisibleLoads(requester kernel.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(visibleLoadSQL, requesterArg(requester))
	}
}

func requesterArg(requester kernel.UUID) sql.NamedArg {
	return namedUUID("requester", requester)
}

func namedUUID(name string, id kernel.UUID) sql.NamedArg {
	return sql.Named(name, id.Bytes())
}
