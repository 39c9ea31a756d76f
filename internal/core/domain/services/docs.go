// Package services holds domain logic that spans aggregates.
//
// The package includes:
//   - AccessPolicy: company-scoped visibility and authorization over loads and offers
//   - Negotiator: folds offer outcomes into the load's carrier and status
package services
