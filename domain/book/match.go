package book

// crosses reports whether an incoming order trades against a resting price.
func crosses(incoming *Order, restingPrice int64) bool {
	if incoming.Side == Buy {
		return restingPrice <= incoming.Price
	}
	return restingPrice >= incoming.Price
}

// matchIncoming drains crossing volume from the opposite side. It mutates
// incoming.Qty and the resting orders it touches; fully filled resting orders
// are popped from the backend. Fills come back in execution order.
func matchIncoming(be Backend, incoming *Order) []Fill {
	opp := incoming.Side.Opposite()
	var fills []Fill
	for incoming.Qty > 0 {
		best := be.PeekBest(opp)
		if best == nil || !crosses(incoming, best.Price) {
			break
		}
		traded := min(incoming.Qty, best.Qty)
		incoming.Qty -= traded
		best.Qty -= traded
		fills = append(fills, Fill{
			Price:   best.Price, // maker's price
			Qty:     traded,
			MakerID: best.ID,
			TakerID: incoming.ID,
		})
		if best.Qty == 0 {
			be.PopBest(opp)
		}
	}
	return fills
}
