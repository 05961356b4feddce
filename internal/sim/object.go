package sim

import (
	"fmt"
	"strings"

	"bounce-demo/internal/physics"
)

// ObjectType is the mesh an object is drawn with. The simulation stores it but never
// interprets it.
type ObjectType uint8

const (
	Cube ObjectType = iota
	Sphere
	Bunny
)

var objectTypeNames = [...]string{"cube", "sphere", "bunny"}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return fmt.Sprintf("object(%d)", t)
}

// ParseObjectType maps "cube", "sphere" or "bunny" (case-insensitive) to its type.
func ParseObjectType(s string) (ObjectType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range objectTypeNames {
		if s == name {
			return ObjectType(i), nil
		}
	}
	return Cube, fmt.Errorf("unknown object type %q", s)
}

// SpawnedObject is one of the objects launched in multi mode.
type SpawnedObject struct {
	physics.Body
	ColorIndex int        `json:"color_index"`
	Type       ObjectType `json:"type"`
	Size       float32    `json:"size"`
	SpawnTime  float32    `json:"spawn_time"`
}

// Age returns how long the object has existed at simulation time now.
func (o SpawnedObject) Age(now float32) float32 {
	return now - o.SpawnTime
}

// BounceEvent records a floor hit during the last tick. Hosts use it for sound and effects.
type BounceEvent struct {
	Position physics.Vec2 `json:"position"`
	Impact   float32      `json:"impact"`
	Tracked  bool         `json:"tracked"`
	Type     ObjectType   `json:"type"`
}
