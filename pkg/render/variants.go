package render

import (
	"image"
	"sort"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

// Variant is an immutable image handle. Many nodes share one *Variant;
// the pixels are never copied per node.
type Variant struct {
	name string
	img  image.Image
}

// NewVariant wraps img. The caller must not modify img afterwards.
func NewVariant(name string, img image.Image) *Variant {
	return &Variant{name: name, img: img}
}

// Name is a label for logs and CLI output (usually the source file name).
func (v *Variant) Name() string { return v.name }

// Image returns the source pixels.
func (v *Variant) Image() image.Image { return v.img }

// Size returns the source image dimensions.
func (v *Variant) Size() image.Point { return v.img.Bounds().Size() }

// VariantStore maps a shape tag to its interchangeable images.
//
// Insertion order is part of the contract: a node picks
// Lookup(key)[seed % len], so reordering registrations changes what is
// drawn. The store is filled during setup and only read while rendering.
type VariantStore struct {
	variants map[board.VariantKey][]*Variant
}

// NewVariantStore returns an empty store.
func NewVariantStore() *VariantStore {
	return &VariantStore{variants: make(map[board.VariantKey][]*Variant)}
}

// Register appends v to key's list.
func (s *VariantStore) Register(key board.VariantKey, v *Variant) {
	if v == nil || v.img == nil {
		return
	}
	s.variants[key] = append(s.variants[key], v)
}

// RegisterImage is Register(key, NewVariant(name, img)).
func (s *VariantStore) RegisterImage(key board.VariantKey, name string, img image.Image) *Variant {
	v := NewVariant(name, img)
	s.Register(key, v)
	return v
}

// Lookup returns the ordered variants for key, or nil when none exist.
func (s *VariantStore) Lookup(key board.VariantKey) []*Variant {
	if s == nil {
		return nil
	}
	return s.variants[key]
}

// Keys returns every key with at least one variant, sorted.
func (s *VariantStore) Keys() []board.VariantKey {
	keys := make([]board.VariantKey, 0, len(s.variants))
	for k, vs := range s.variants {
		if len(vs) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Attribute != keys[j].Attribute {
			return keys[i].Attribute < keys[j].Attribute
		}
		return keys[i].Bend < keys[j].Bend
	})
	return keys
}

// Len returns the total number of registered variants.
func (s *VariantStore) Len() int {
	n := 0
	for _, vs := range s.variants {
		n += len(vs)
	}
	return n
}

// Missing returns the keys from want that have no variants.
func (s *VariantStore) Missing(want []board.VariantKey) []board.VariantKey {
	var out []board.VariantKey
	for _, k := range want {
		if len(s.Lookup(k)) == 0 {
			out = append(out, k)
		}
	}
	return out
}
