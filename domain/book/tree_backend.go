package book

import "github.com/google/btree"

// treeBackend keeps one btree of price levels per side. The bid tree uses an
// inverted comparator so Min() is always the best price on either side; each
// level is a FIFO queue, giving price-then-time ordering for free.
type treeBackend struct {
	bids, asks *btree.BTreeG[*priceLevel]
	byID       map[uint64]*Order
	orders     int
}

const treeDegree = 16

func newTreeBackend() *treeBackend {
	return &treeBackend{
		// bids descending: best bid = highest price
		bids: btree.NewG(treeDegree, func(a, b *priceLevel) bool { return a.price > b.price }),
		// asks ascending: best ask = lowest price
		asks: btree.NewG(treeDegree, func(a, b *priceLevel) bool { return a.price < b.price }),
		byID: make(map[uint64]*Order),
	}
}

func (t *treeBackend) Kind() Kind { return KindTree }

func (t *treeBackend) tree(side Side) *btree.BTreeG[*priceLevel] {
	if side == Buy {
		return t.bids
	}
	return t.asks
}

func (t *treeBackend) InsertResting(o *Order) error {
	tr := t.tree(o.Side)
	lvl, ok := tr.Get(&priceLevel{price: o.Price})
	if !ok {
		lvl = &priceLevel{price: o.Price}
		tr.ReplaceOrInsert(lvl)
	}
	lvl.enqueue(o)
	t.byID[o.ID] = o
	t.orders++
	return nil
}

func (t *treeBackend) PeekBest(side Side) *Order {
	lvl, ok := t.tree(side).Min()
	if !ok {
		return nil
	}
	return lvl.head
}

func (t *treeBackend) PopBest(side Side) *Order {
	tr := t.tree(side)
	lvl, ok := tr.Min()
	if !ok {
		return nil
	}
	o := lvl.head
	lvl.unlink(o)
	if lvl.empty() {
		tr.Delete(lvl)
	}
	delete(t.byID, o.ID)
	t.orders--
	return o
}

func (t *treeBackend) Remove(id uint64) error {
	o, ok := t.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	tr := t.tree(o.Side)
	if lvl, ok := tr.Get(&priceLevel{price: o.Price}); ok {
		lvl.unlink(o)
		if lvl.empty() {
			tr.Delete(lvl)
		}
	}
	delete(t.byID, id)
	t.orders--
	return nil
}

func (t *treeBackend) BestPrice(side Side) (int64, bool) {
	lvl, ok := t.tree(side).Min()
	if !ok {
		return 0, false
	}
	return lvl.price, true
}

func (t *treeBackend) SideEmpty(side Side) bool {
	return t.tree(side).Len() == 0
}

func (t *treeBackend) Len() int { return t.orders }
