package creature

import (
	"fmt"
	"math"
	"strings"
)

// SegmentType classifies the functional role of a body segment.
type SegmentType uint8

const (
	Energy SegmentType = iota // Produces energy
	Attack
	Defend
	Move // Drives locomotion

	numSegmentTypes
)

var segmentTypeNames = [numSegmentTypes]string{"energy", "attack", "defend", "move"}

// SegmentTypes lists every segment type in declaration order.
func SegmentTypes() []SegmentType {
	return []SegmentType{Energy, Attack, Defend, Move}
}

func (t SegmentType) String() string {
	if t < numSegmentTypes {
		return segmentTypeNames[t]
	}
	return fmt.Sprintf("SegmentType(%d)", uint8(t))
}

// MarshalText encodes the type as its lower-case name.
func (t SegmentType) MarshalText() ([]byte, error) {
	if t >= numSegmentTypes {
		return nil, fmt.Errorf("unknown segment type %d", uint8(t))
	}
	return []byte(segmentTypeNames[t]), nil
}

// UnmarshalText decodes a segment type name (case-insensitive).
func (t *SegmentType) UnmarshalText(text []byte) error {
	parsed, err := ParseSegmentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseSegmentType parses a segment type name.
func ParseSegmentType(s string) (SegmentType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range segmentTypeNames {
		if n == name {
			return SegmentType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown segment type %q", s)
}

// Segment is a straight body piece in creature-local space.
type Segment struct {
	A, B Vec2
	Type SegmentType
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float32 {
	return s.B.Sub(s.A).Length()
}

// MaxDistFromOriginSquared returns the larger squared norm of the two endpoints.
func (s Segment) MaxDistFromOriginSquared() float32 {
	return max(s.A.LengthSquared(), s.B.LengthSquared())
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Vec2 {
	return s.A.Add(s.B).Scale(0.5)
}

// Direction returns the unit vector from A to B, or zero for a degenerate segment.
func (s Segment) Direction() Vec2 {
	return s.B.Sub(s.A).NormalizeOrZero()
}

// SegmentLengths is the total body length broken down by segment type.
type SegmentLengths struct {
	Energy float32
	Attack float32
	Defend float32
	Move   float32
	Total  float32
}

// Of returns the sub-total for one segment type.
func (l SegmentLengths) Of(t SegmentType) float32 {
	switch t {
	case Energy:
		return l.Energy
	case Attack:
		return l.Attack
	case Defend:
		return l.Defend
	case Move:
		return l.Move
	}
	return 0
}

func (l *SegmentLengths) add(t SegmentType, length float32) {
	switch t {
	case Energy:
		l.Energy += length
	case Attack:
		l.Attack += length
	case Defend:
		l.Defend += length
	case Move:
		l.Move += length
	default:
		return
	}
	l.Total += length
}

// sumLengths aggregates segment lengths by type.
func sumLengths(segments []Segment) SegmentLengths {
	var l SegmentLengths
	for _, s := range segments {
		l.add(s.Type, s.Length())
	}
	return l
}

// radius returns the distance of the farthest endpoint from the local origin.
func radius(segments []Segment) float32 {
	var maxSq float32
	for _, s := range segments {
		maxSq = max(maxSq, s.MaxDistFromOriginSquared())
	}
	return float32(math.Sqrt(float64(maxSq)))
}
