// Package layout describes a container holding several named bitfields and
// packs or unpacks all of them at once.
//
// A Layout only ever describes a single unsigned integer of 8, 16, 32 or 64
// bits. Fields are added once; after that a Layout is safe for concurrent
// readers.
package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"

	"Bitfield/bitfield"
	"Bitfield/bits"
	"Bitfield/errutil"
)

var (
	ErrUnsupportedWidth = errors.New("unsupported container width")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrOverlap          = errors.New("field overlaps another field")
	ErrUnknownField     = errors.New("unknown field")
)

type field struct {
	name string
	mask bitfield.Mask[uint64]
}

type Layout struct {
	name   string
	width  int
	fields []field // ordered by shift
	used   uint64
}

func New(name string, width int) (*Layout, error) {
	if !IsSupportedWidth(width) {
		return nil, fmt.Errorf("layout %s: %w: %d", name, ErrUnsupportedWidth, width)
	}
	return &Layout{name: name, width: width}, nil
}

func (l *Layout) Name() string { return l.name }
func (l *Layout) Width() int   { return l.width }

// Add registers a field. The mask must be contiguous, fit the container and
// not share bits with fields added before.
func (l *Layout) Add(name string, mask uint64) error {
	if _, ok := l.lookup(name); ok {
		return fmt.Errorf("layout %s: %w: %s", l.name, ErrDuplicateField, name)
	}
	if mask&^bits.LowMask[uint64](l.width) != 0 {
		return fmt.Errorf("layout %s: field %s: mask %#x exceeds u%d container: %w",
			l.name, name, mask, l.width, bitfield.ErrInvalidMask)
	}
	m, err := bitfield.NewMask(mask)
	if err != nil {
		return fmt.Errorf("layout %s: field %s: %w", l.name, name, err)
	}
	if mask&l.used != 0 {
		return fmt.Errorf("layout %s: field %s %#x: %w", l.name, name, mask, ErrOverlap)
	}

	l.fields = append(l.fields, field{name: name, mask: m})
	slices.SortFunc(l.fields, func(a, b field) bool {
		return a.mask.Shift() < b.mask.Shift()
	})
	l.used |= mask
	return nil
}

// MustAdd is Add for statically known layouts.
func (l *Layout) MustAdd(name string, mask uint64) *Layout {
	errutil.FatalIf(l.Add(name, mask))
	return l
}

// Fields returns field names ordered from the least significant field up.
func (l *Layout) Fields() []string {
	names := make([]string, len(l.fields))
	for i, f := range l.fields {
		names[i] = f.name
	}
	return names
}

// Mask returns the mask of the named field.
func (l *Layout) Mask(name string) (uint64, bool) {
	f, ok := l.lookup(name)
	if !ok {
		return 0, false
	}
	return f.mask.Bits(), true
}

// Pack encodes values into a fresh container. Fields missing from values are
// zero. Unknown names and values that do not fit their field are errors.
func (l *Layout) Pack(values map[string]uint64) (uint64, error) {
	var container uint64
	matched := 0
	for _, f := range l.fields {
		v, ok := values[f.name]
		if !ok {
			continue
		}
		matched++
		enc, err := f.mask.Encode(v)
		if err != nil {
			return 0, fmt.Errorf("layout %s: field %s: %w", l.name, f.name, err)
		}
		container |= enc
	}
	if matched != len(values) {
		return 0, fmt.Errorf("layout %s: %w: %v", l.name, ErrUnknownField, l.unknown(values))
	}
	return container, nil
}

// Unpack decodes every field of container. Bits outside all fields are ignored.
func (l *Layout) Unpack(container uint64) map[string]uint64 {
	values := make(map[string]uint64, len(l.fields))
	for _, f := range l.fields {
		values[f.name] = f.mask.Get(container)
	}
	return values
}

func (l *Layout) Get(container uint64, name string) (uint64, error) {
	f, ok := l.lookup(name)
	if !ok {
		return 0, fmt.Errorf("layout %s: %w: %s", l.name, ErrUnknownField, name)
	}
	return f.mask.Get(container), nil
}

// Set returns container with the named field replaced by value; other bits
// are kept.
func (l *Layout) Set(container uint64, name string, value uint64) (uint64, error) {
	f, ok := l.lookup(name)
	if !ok {
		return 0, fmt.Errorf("layout %s: %w: %s", l.name, ErrUnknownField, name)
	}
	if _, err := f.mask.Encode(value); err != nil {
		return 0, fmt.Errorf("layout %s: field %s: %w", l.name, name, err)
	}
	return f.mask.Replace(container, value), nil
}

// Fingerprint hashes the container width and every field's name and mask.
// Two layouts share a fingerprint only if they pack identically.
func (l *Layout) Fingerprint() uint64 {
	h := xxh3.New()

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(l.width))
	h.Write(buf[:4])

	for _, f := range l.fields {
		binary.LittleEndian.PutUint32(buf[:4], uint32(len(f.name)))
		h.Write(buf[:4])
		h.WriteString(f.name)
		binary.LittleEndian.PutUint64(buf[:], f.mask.Bits())
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (l *Layout) Report() Report {
	r := Report{
		Name:     l.name,
		Width:    l.width,
		Max:      bits.LowMask[uint64](l.width),
		Children: make([]Report, 0, len(l.fields)),
	}
	for _, f := range l.fields {
		r.Children = append(r.Children, Report{
			Name:  f.name,
			Mask:  fmt.Sprintf("0x%0*x", l.width/4, f.mask.Bits()),
			Shift: f.mask.Shift(),
			Width: f.mask.Width(),
			Max:   f.mask.Max(),
		})
	}
	return r
}

func (l *Layout) lookup(name string) (field, bool) {
	i := slices.IndexFunc(l.fields, func(f field) bool { return f.name == name })
	if i < 0 {
		return field{}, false
	}
	return l.fields[i], true
}

func (l *Layout) unknown(values map[string]uint64) []string {
	var names []string
	for name := range values {
		if _, ok := l.lookup(name); !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
