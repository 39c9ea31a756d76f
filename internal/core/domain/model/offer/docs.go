// Package offer implements the price negotiation between a load's dispatcher
// and its customer or carrier.
//
// Protocol:
//   - The dispatcher opens a thread with an initial amount; current starts equal to it
//   - While Pending either side may counter with a new positive amount
//   - Only the side that did not make the last move may accept or reject
//   - Accepted and Rejected are terminal; acting on a terminal thread is a conflict
//   - One Pending or Accepted thread per load leg; rejection frees the leg
package offer
