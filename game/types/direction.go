package types

// Direction is one of the four cardinal directions
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Key identifiers delivered by the input collaborator
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Directions lists all directions in clockwise order starting from Up
var Directions = [4]Direction{Up, Right, Down, Left}

// Vector converts a Direction into a one-cell displacement
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseKey maps an arrow key identifier to a Direction.
// Any other identifier reports ok == false.
func ParseKey(id string) (Direction, bool) {
	switch id {
	case KeyArrowUp:
		return Up, true
	case KeyArrowDown:
		return Down, true
	case KeyArrowLeft:
		return Left, true
	case KeyArrowRight:
		return Right, true
	}
	return 0, false
}
