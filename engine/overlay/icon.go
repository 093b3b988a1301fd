package overlay

import (
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// IconID identifies one of the feedback icons anchored on the interactive surface.
type IconID int

const (
	Play IconID = iota
	Pause
	Rewind
	Forward
)

// Icons lists every IconID in creation order.
var Icons = []IconID{Play, Pause, Rewind, Forward}

func (id IconID) String() string {
	switch id {
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Rewind:
		return "rewind"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// Valid reports whether id names a known icon.
func (id IconID) Valid() bool {
	return id >= Play && id <= Forward
}

// Offset returns the icon's anchor in the surface's local space. Icons sit slightly
// in front of the surface so they never z-fight with the video.
//
// Returns:
//   - mgl32.Vec3: local offset, or the zero vector for an unknown id
func (id IconID) Offset() mgl32.Vec3 {
	switch id {
	case Play, Pause:
		return mgl32.Vec3{0, 0, 0.1}
	case Rewind:
		return mgl32.Vec3{-3, 0, 0.1}
	case Forward:
		return mgl32.Vec3{3, 0, 0.1}
	default:
		return mgl32.Vec3{}
	}
}

// Outlines returns the flat polygons making up the icon's glyph.
//
// Returns:
//   - []model.Outline: convex outlines in icon-local XY, or nil for an unknown id
func (id IconID) Outlines() []model.Outline {
	switch id {
	case Play:
		return []model.Outline{
			{{-0.2, -0.3}, {0.4, 0}, {-0.2, 0.3}},
		}
	case Pause:
		return []model.Outline{
			{{-0.25, -0.3}, {-0.05, -0.3}, {-0.05, 0.3}, {-0.25, 0.3}},
			{{0.05, -0.3}, {0.25, -0.3}, {0.25, 0.3}, {0.05, 0.3}},
		}
	case Rewind:
		return []model.Outline{
			{{0.1, -0.3}, {-0.3, 0}, {0.1, 0.3}},
			{{0.5, -0.3}, {0.1, 0}, {0.5, 0.3}},
		}
	case Forward:
		return []model.Outline{
			{{-0.1, -0.3}, {0.3, 0}, {-0.1, 0.3}},
			{{-0.5, -0.3}, {-0.1, 0}, {-0.5, 0.3}},
		}
	default:
		return nil
	}
}

// newIconObject builds the scene node for an icon at its anchor offset.
//
// Parameters:
//   - id: the icon to build
//   - opacity: initial material opacity
//   - visible: initial visibility
//
// Returns:
//   - game_object.GameObject: the icon node, not yet parented
func newIconObject(id IconID, opacity float32, visible bool) game_object.GameObject {
	offset := id.Offset()
	return game_object.NewGameObject(
		game_object.WithName(id.String()),
		game_object.WithModel(model.NewShape(id.String(), id.Outlines()...)),
		game_object.WithPosition(offset[0], offset[1], offset[2]),
		game_object.WithOpacity(opacity),
		game_object.WithEnabled(visible),
	)
}
