package component

// Inventory holds item labels in acquisition order. Duplicates are allowed.
type Inventory struct {
	Items []string
}

// Add appends items in the order given.
func (inv *Inventory) Add(items ...string) {
	inv.Items = append(inv.Items, items...)
}
