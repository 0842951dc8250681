package models

// ObservedBox is the shape delivered by the box discovery collaborator. It
// carries no identity beyond the (Name, Month) pair.
type ObservedBox struct {
	Name        string            `json:"name"`
	Month       string            `json:"month"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Items       []ObservedBoxItem `json:"items"`
}

type ObservedBoxItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// NewBoxFromObserved converts an observed box into the persisted shape. The
// conversion is pure; it never touches the store.
func NewBoxFromObserved(observed ObservedBox) *Box {
	items := make([]BoxItem, 0, len(observed.Items))
	for _, item := range observed.Items {
		items = append(items, newBoxItemFromObserved(item))
	}
	return &Box{
		Name:        observed.Name,
		Month:       observed.Month,
		Description: observed.Description,
		Price:       observed.Price,
		Items:       items,
	}
}

func newBoxItemFromObserved(observed ObservedBoxItem) BoxItem {
	return BoxItem{
		Name:        observed.Name,
		Description: observed.Description,
		Price:       observed.Price,
	}
}
