package types

import (
	"fmt"
	"strings"
)

// Anchor selects where the logo is placed over the background
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
	Center
)

var anchorNames = map[Anchor]string{
	TopLeft:     "TOP-LEFT",
	TopRight:    "TOP-RIGHT",
	BottomLeft:  "BOTTOM-LEFT",
	BottomRight: "BOTTOM-RIGHT",
	Center:      "CENTER",
}

// Anchors lists every anchor in declaration order
func Anchors() []Anchor {
	return []Anchor{TopLeft, TopRight, BottomLeft, BottomRight, Center}
}

// ParseAnchor accepts TOP-LEFT, top_left, TopLeft and the like.
func ParseAnchor(s string) (Anchor, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for a, name := range anchorNames {
		if strings.ReplaceAll(name, "-", "") == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid logo position %q (want one of %s)", s, anchorList())
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler
func (a Anchor) MarshalText() ([]byte, error) {
	if _, ok := anchorNames[a]; !ok {
		return nil, fmt.Errorf("unknown anchor %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func anchorList() string {
	names := make([]string, 0, len(anchorNames))
	for _, a := range Anchors() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
