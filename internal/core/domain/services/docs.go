// Package services contains stateless domain services.
//
// BagPacker implements the order selection algorithm: given a courier and a
// set of candidate orders, it fills a bag shift by shift, lightest orders
// first, without exceeding the courier's carrying capacity.
package services
