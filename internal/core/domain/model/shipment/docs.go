// Package shipment contains the Shipment aggregate.
//
// A shipment is one batch of orders handed to a courier. It freezes the
// courier's transport type at the moment of assignment so that later edits
// to the courier do not rewrite delivery history. A courier has at most one
// active shipment at a time; the shipment stays active until every order in
// it is delivered, at which point it is closed with a completion time.
package shipment
