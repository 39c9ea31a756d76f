// Package kernel holds the value objects shared by every freight aggregate:
//   - UUID: identifier for loads, offers, shipments, facilities, users, profiles and companies
//   - Money: non-negative offer amounts backed by shopspring/decimal
package kernel
