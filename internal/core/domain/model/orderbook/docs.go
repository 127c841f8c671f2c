// Package orderbook contains the OrderBook aggregate: the order entity with
// its cart and delivery slot, the order lifecycle state machine, and the
// facts describing every change an order can undergo.
//
// The aggregate follows the same two-phase protocol as the catalog: command
// methods validate and return a fact, Apply consumes a fact and mutates. An
// order starts in the New status on creation and moves through
// Collecting -> Booked -> Paid -> Shipping -> Completed, with Discarded and
// Refund as terminal exits. The Booked -> Paid transition additionally
// requires a delivery slot to be assigned.
//
// The order book depends on the catalog only through the ItemChecker
// existence query, so each aggregate remains the sole writer of its own
// state. When a catalog item is deleted, RemoveDeletedItem produces the
// facts that strip the item from every cart referencing it.
package orderbook
