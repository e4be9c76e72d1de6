package cart

// Reduce applies an action to a state and returns the next state. It is a
// pure, total function: the input state is never mutated, every action
// produces a well-typed result, and no action signals failure.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		for i, item := range state.Items {
			if item.Product.ID == a.Product.ID && item.Variant.ID == a.Variant.ID {
				items := copyItems(state.Items)
				items[i].Quantity += a.Quantity
				return State{Items: items}
			}
		}
		items := copyItems(state.Items)
		items = append(items, LineItem{Product: a.Product, Variant: a.Variant, Quantity: a.Quantity})
		return State{Items: items}

	case RemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID == a.ProductID && item.Variant.ID == a.VariantID {
				continue
			}
			items = append(items, item)
		}
		return State{Items: items}

	case UpdateQuantity:
		items := copyItems(state.Items)
		for i, item := range items {
			if item.Product.ID == a.ProductID && item.Variant.ID == a.VariantID {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items}

	case ClearCart:
		return State{Items: []LineItem{}}

	case LoadCart:
		return State{Items: a.Items}

	default:
		return state
	}
}

func copyItems(items []LineItem) []LineItem {
	cp := make([]LineItem, len(items))
	copy(cp, items)
	return cp
}
