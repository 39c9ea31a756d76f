// Package load provides the Load aggregate and its status state machine.
//
// Key business rules:
//   - Loads are created by a dispatcher or shipment party with distinct
//     pick-up and destination facilities, delivery strictly after pick-up, and
//     pick-up not before the creation day
//   - Offer outcomes drive the status from Created up to Ready For Pickup; the
//     customer and carrier legs are independent
//   - Only In Transit, Delivered and Canceled can be requested explicitly
//   - Delivered and Canceled are terminal
package load
