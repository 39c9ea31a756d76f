// Package party models the Party Directory: AppUsers, their role
// capabilities, role-specific profiles (carrier, dispatcher, shipment party)
// and the Companies that employ them.
//
// Key rules:
//   - A UserType is either a combination of carrier, dispatcher and shipment
//     party, or exactly one of manager or support
//   - The selected role must be granted by the UserType
//   - Only active profiles resolve; inactive ones behave as absent
//   - Authorization is company-scoped, so Employees is the membership set
//     every access decision is made against
package party
