package model

// LoadShape selects how much of an aggregate a read returns.
type LoadShape int

const (
	// ShapeSummary loads the row alone; child collections stay nil.
	ShapeSummary LoadShape = iota
	// ShapeWithRelations eager-loads invoices and telephone numbers.
	ShapeWithRelations
)

func (s LoadShape) String() string {
	if s == ShapeWithRelations {
		return "with_relations"
	}
	return "summary"
}
