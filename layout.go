package rbestore

import (
	"strings"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/index/bitmap"
	"github.com/hupe1980/rbestore/index/inverted"
	"github.com/hupe1980/rbestore/index/longtable"
	"github.com/hupe1980/rbestore/index/primary"
)

// Layout selects how a store arranges its records and indexes.
type Layout int

const (
	// LayoutInverted keeps a primary key map and a node -> rows multi-map.
	LayoutInverted Layout = iota
	// LayoutBitmap keeps a primary key map and a node -> Roaring bitmap of rows.
	LayoutBitmap
	// LayoutPrimary keeps only the primary key map; reverse lookups scan.
	LayoutPrimary
	// LayoutLongTable keeps one unindexed row per dependent; every lookup scans.
	LayoutLongTable
)

var layoutNames = [...]string{
	LayoutInverted:  "inverted",
	LayoutBitmap:    "bitmap",
	LayoutPrimary:   "primary",
	LayoutLongTable: "longtable",
}

// Layouts returns every supported layout.
func Layouts() []Layout {
	return []Layout{LayoutInverted, LayoutBitmap, LayoutPrimary, LayoutLongTable}
}

// String returns a string representation of the Layout.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "unknown"
	}
	return layoutNames[l]
}

// ParseLayout returns the layout with the given name (case-insensitive).
func ParseLayout(name string) (Layout, error) {
	for _, l := range Layouts() {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return 0, &ErrUnknownLayout{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	if l.builder() == nil {
		return nil, &ErrUnknownLayout{Name: l.String()}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	parsed, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Layout) builder() index.Builder {
	switch l {
	case LayoutInverted:
		return inverted.Builder
	case LayoutBitmap:
		return bitmap.Builder
	case LayoutPrimary:
		return primary.Builder
	case LayoutLongTable:
		return longtable.Builder
	default:
		return nil
	}
}
