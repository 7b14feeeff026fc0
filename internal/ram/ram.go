// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM mapped at a base address.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type ram struct {
	base uint16
	data []uint8
}

// NewRAM returns a new RAM of size bytes, answering addresses
// base through base+size-1.
func NewRAM(base uint16, size uint32) RAM {
	return &ram{
		base: base,
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[int(address-r.base)%len(r.data)]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[int(address-r.base)%len(r.data)] = value
}
