package shamap

// Item is the keyed record committed by a leaf.
type Item struct {
	key  [32]byte // ledger entry index or transaction ID
	blob []byte   // canonical binary payload
}

// NewItem constructs a new Item, copying data.
func NewItem(key [32]byte, data []byte) *Item {
	item := &Item{
		key:  key,
		blob: make([]byte, len(data)),
	}
	copy(item.blob, data)
	return item
}

// Key returns the key of the item.
func (s *Item) Key() [32]byte {
	return s.key
}

// Data returns the raw data stored in the item.
func (s *Item) Data() []byte {
	return s.blob
}

// Size returns the size of the data blob.
func (s *Item) Size() int {
	return len(s.blob)
}
