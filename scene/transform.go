package scene

import "github.com/go-gl/mathgl/mgl64"

// Transform holds an entity's placement in world space.
// Rotation is stored as Euler angles in radians; there is no quaternion
// normalization step, angles simply accumulate.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.Vec3{0, 0, 0},
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}
