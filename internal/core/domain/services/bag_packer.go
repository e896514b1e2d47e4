package services

import (
	"sort"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Bag is the outcome of packing: the set of selected orders and their
// combined weight.
type Bag struct {
	weights map[uint64]kernel.Weight
	total   decimal.Decimal
}

func newBag() Bag {
	return Bag{weights: make(map[uint64]kernel.Weight)}
}

func (b *Bag) add(o *order.Order) {
	b.weights[o.ID()] = o.Weight()
	b.total = b.total.Add(o.Weight().Value())
}

// Contains reports whether the order was selected into the bag.
func (b Bag) Contains(orderID uint64) bool {
	_, ok := b.weights[orderID]
	return ok
}

// OrderIDs returns the ids of the selected orders in ascending order.
func (b Bag) OrderIDs() []uint64 {
	ids := make([]uint64, 0, len(b.weights))
	for id := range b.weights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TotalWeight returns the combined weight of the selected orders in kilograms.
func (b Bag) TotalWeight() decimal.Decimal {
	return b.total
}

// Len returns the number of selected orders.
func (b Bag) Len() int {
	return len(b.weights)
}

// BagPacker selects which of the candidate orders a courier can carry.
//
// Packing walks the courier's shifts in ascending start order. Within a
// shift the matching orders are taken lightest first; the first order that
// would overflow the remaining capacity ends the shift, and packing moves
// on to the next one. An order matches a shift when its region is served by
// the courier and at least one of its delivery windows overlaps the shift.
type BagPacker struct{}

// NewBagPacker creates a new BagPacker instance.
func NewBagPacker() BagPacker {
	return BagPacker{}
}

// Pack fills a bag for the courier from the candidate orders.
func (p BagPacker) Pack(c *courier.Courier, candidates []*order.Order) (Bag, error) {
	if err := c.Validate(); err != nil {
		return Bag{}, err
	}
	for _, o := range candidates {
		if err := o.Validate(); err != nil {
			return Bag{}, err
		}
	}

	bag := newBag()
	capacity := c.Capacity().Value()

	shifts := c.Shifts()
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].Start().Before(shifts[j].Start())
	})

	for _, shift := range shifts {
		matching := p.matchingOrders(c, shift, candidates, bag)

		for _, o := range matching {
			next := bag.total.Add(o.Weight().Value())
			if next.GreaterThan(capacity) {
				break
			}
			bag.add(o)
		}
	}

	return bag, nil
}

// matchingOrders returns the not yet selected candidates deliverable within
// the shift, sorted lightest first with ascending order id as a tie-break.
func (p BagPacker) matchingOrders(
	c *courier.Courier,
	shift kernel.TimeInterval,
	candidates []*order.Order,
	bag Bag,
) []*order.Order {
	matching := make([]*order.Order, 0, len(candidates))
	for _, o := range candidates {
		if bag.Contains(o.ID()) {
			continue
		}
		if !c.ServesRegion(o.RegionID()) {
			continue
		}
		if !o.SuitsShift(shift) {
			continue
		}
		matching = append(matching, o)
	}

	sort.Slice(matching, func(i, j int) bool {
		wi, wj := matching[i].Weight(), matching[j].Weight()
		if wi.IsEqual(wj) {
			return matching[i].ID() < matching[j].ID()
		}
		return wi.LessThan(wj)
	})

	return matching
}
