package components

// Identity tracks who an entity is and when it appeared.
type Identity struct {
	ID       uint32 `inspect:"label"`
	BornTick int32  `inspect:"label"`
}
