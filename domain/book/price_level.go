package book

// priceLevel is a FIFO queue of resting orders at one price, linked through
// the orders themselves. The head is the oldest order and matches first.
type priceLevel struct {
	price int64
	head  *Order
	tail  *Order
	count int
}

func (p *priceLevel) empty() bool { return p.head == nil }

func (p *priceLevel) enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.count++
}

func (p *priceLevel) unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next, o.prev = nil, nil
	p.count--
}
