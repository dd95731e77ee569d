package diag

// Bag collects the findings of a single file in report order.
type Bag struct {
	file  string
	items []Finding
}

func NewBag(file string) *Bag {
	return &Bag{file: file}
}

// NewBagFrom wraps findings restored from elsewhere (e.g. the result cache).
func NewBagFrom(file string, items []Finding) *Bag {
	return &Bag{file: file, items: items}
}

// Report добавляет находку; имя файла у Bag одно, аргумент игнорируется.
func (b *Bag) Report(_ string, f Finding) {
	b.items = append(b.items, f)
}

// Items возвращает read-only slice находок.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Finding {
	return b.items
}

// Replay re-reports every finding, in the original order, to r.
func (b *Bag) Replay(r Reporter) {
	if b == nil || r == nil {
		return
	}
	for _, f := range b.items {
		r.Report(b.file, f)
	}
}
