package entities

import "sort"

// Changeset is everything one command writes. Stores commit it all-or-nothing:
// the order row is written only if its stored version still equals ExpectedVersion.
type Changeset struct {
	Order           Order
	ExpectedVersion int64
	NewOrder        bool
	Upserts         []Installment
	Deletes         []Installment
	Deltas          []CustomerDelta
}

// Track records how an installment changed. before == nil means it is new,
// after == nil means it is being deleted.
func (c *Changeset) Track(before, after *Installment) {
	switch {
	case after != nil:
		c.Upserts = append(c.Upserts, *after)
	case before != nil:
		c.Deletes = append(c.Deletes, *before)
	}
	c.addExposure(before, after)
}

func (c *Changeset) addExposure(before, after *Installment) {
	var ref Installment
	outstanding := Zero
	if before != nil {
		ref = *before
		outstanding = outstanding.Sub(before.Exposure())
	}
	if after != nil {
		ref = *after
		outstanding = outstanding.Add(after.Exposure())
	}
	if outstanding.IsZero() {
		return
	}
	c.AddDelta(ref.CustomerID, "", outstanding)
	if ref.StoreID != "" {
		c.AddDelta(ref.CustomerID, ref.StoreID, outstanding)
	}
}

// AddDelta merges an outstanding adjustment into the account's pending delta.
func (c *Changeset) AddDelta(customerID, storeID string, outstanding Money) {
	account := AccountID(customerID, storeID)
	for i := range c.Deltas {
		if c.Deltas[i].AccountID == account {
			c.Deltas[i].Outstanding = c.Deltas[i].Outstanding.Add(outstanding)
			return
		}
	}
	c.Deltas = append(c.Deltas, CustomerDelta{
		AccountID:   account,
		CustomerID:  customerID,
		StoreID:     storeID,
		Outstanding: outstanding,
	})
}

// EffectiveDeltas drops adjustments that cancelled out, in a stable order.
func (c Changeset) EffectiveDeltas() []CustomerDelta {
	out := make([]CustomerDelta, 0, len(c.Deltas))
	for _, d := range c.Deltas {
		if !d.IsZero() {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].AccountID < out[b].AccountID })
	return out
}

// HasLedgerWrites reports whether any installment row is touched.
func (c Changeset) HasLedgerWrites() bool {
	return len(c.Upserts) > 0 || len(c.Deletes) > 0
}
