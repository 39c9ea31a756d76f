// Package shipment holds the Shipment container, its admin delegations and
// the Facilities that loads reference as pick-up and destination points.
package shipment
