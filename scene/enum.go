package scene

import (
	"fmt"
	"strings"
)

// Enumerations are stored in documents by name. The helpers below back
// the MarshalText/UnmarshalText pairs used by both codecs.

var (
	shapeKindNames     = []string{"rectangle", "ellipse", "text"}
	fillModeNames      = []string{"solid", "gradient"}
	animationKindNames = []string{"none", "fade", "reveal"}
	directionNames     = []string{"left", "right", "top", "bottom"}
)

func marshalEnum(names []string, v uint8) ([]byte, error) {
	if int(v) >= len(names) {
		return nil, fmt.Errorf("enum value %d out of range", v)
	}
	return []byte(names[v]), nil
}

func unmarshalEnum(names []string, text []byte) (uint8, error) {
	s := strings.TrimSpace(string(text))
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unknown value %q, want one of %s", s, strings.Join(names, ", "))
}

func (k ShapeKind) MarshalText() ([]byte, error) { return marshalEnum(shapeKindNames, uint8(k)) }
func (k *ShapeKind) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(shapeKindNames, text)
	*k = ShapeKind(v)
	return err
}

func (m FillMode) MarshalText() ([]byte, error) { return marshalEnum(fillModeNames, uint8(m)) }
func (m *FillMode) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(fillModeNames, text)
	*m = FillMode(v)
	return err
}

func (k AnimationKind) MarshalText() ([]byte, error) {
	return marshalEnum(animationKindNames, uint8(k))
}
func (k *AnimationKind) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(animationKindNames, text)
	*k = AnimationKind(v)
	return err
}

func (d RevealDirection) MarshalText() ([]byte, error) {
	return marshalEnum(directionNames, uint8(d))
}
func (d *RevealDirection) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(directionNames, text)
	*d = RevealDirection(v)
	return err
}
