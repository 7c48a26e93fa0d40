package sleigh

import "github.com/vovakirdan/sleighride/internal/core"

// Entity is the common part of every pool member.
type Entity struct {
	core.Box
	ID   int
	Dead bool // Removed at the end of the tick
}

func (e Entity) isDead() bool { return e.Dead }

// ObstacleKind is the closed set of obstacle variants.
type ObstacleKind int

const (
	ObstacleTree ObstacleKind = iota
	ObstacleBird
	ObstacleSnowman
	ObstacleBuilding
	ObstacleCloud
	ObstacleIceSpike
	ObstacleBrokenGarland
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTree:
		return "tree"
	case ObstacleBird:
		return "bird"
	case ObstacleSnowman:
		return "snowman"
	case ObstacleBuilding:
		return "building"
	case ObstacleCloud:
		return "cloud"
	case ObstacleIceSpike:
		return "ice_spike"
	case ObstacleBrokenGarland:
		return "broken_garland"
	default:
		return "unknown"
	}
}

// Destructible reports whether snowballs can remove the obstacle.
func (k ObstacleKind) Destructible() bool {
	return k == ObstacleSnowman || k == ObstacleIceSpike || k == ObstacleBrokenGarland
}

// Floating obstacles spawn in the sky band instead of on the ground.
func (k ObstacleKind) Floating() bool {
	return k == ObstacleBird || k == ObstacleCloud || k == ObstacleBrokenGarland
}

// PowerupKind is the closed set of powerup variants.
type PowerupKind int

const (
	PowerupSpeed PowerupKind = iota
	PowerupAmmo
	PowerupBlast
	PowerupHealing
	PowerupLife
)

// AllPowerups lists every variant; spawn draws uniformly from it.
var AllPowerups = []PowerupKind{PowerupSpeed, PowerupAmmo, PowerupBlast, PowerupHealing, PowerupLife}

func (k PowerupKind) String() string {
	switch k {
	case PowerupSpeed:
		return "speed"
	case PowerupAmmo:
		return "ammo"
	case PowerupBlast:
		return "blast"
	case PowerupHealing:
		return "healing"
	case PowerupLife:
		return "life"
	default:
		return "unknown"
	}
}

// LetterVariant tags how a letter is presented.
type LetterVariant int

const (
	LetterNormal LetterVariant = iota
	LetterGolden
	LetterSad
	LetterVillain
	LetterStabilizer // Scripted story letters
)

func (v LetterVariant) String() string {
	switch v {
	case LetterNormal:
		return "normal"
	case LetterGolden:
		return "golden"
	case LetterSad:
		return "sad"
	case LetterVillain:
		return "villain"
	case LetterStabilizer:
		return "stabilizer"
	default:
		return "unknown"
	}
}

// LandmarkFinalHouse is the landmark kind that starts the last level's joyride.
const LandmarkFinalHouse = "FINAL_HOUSE"

type Obstacle struct {
	Entity
	Kind         ObstacleKind
	Destructible bool
}

type Powerup struct {
	Entity
	Kind  PowerupKind
	Phase float64 // Bob accumulator
}

type Letter struct {
	Entity
	Message string
	Variant LetterVariant
	Phase   float64
}

type Landmark struct {
	Entity
	Kind string
	Name string
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

type Projectile struct {
	Entity
	VX    float64
	Trail []Point // Oldest first, bounded
}

// Popup records a collected powerup for the HUD.
type Popup struct {
	ID   int
	Kind PowerupKind
}
