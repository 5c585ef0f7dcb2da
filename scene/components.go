package scene

import "github.com/go-gl/mathgl/mgl64"

// ShapeType represents the kind of collision shape a collider carries
type ShapeType int

const (
	ShapeTypeBox ShapeType = iota
	ShapeTypeSphere
	// ShapeTypeCapsule and ShapeTypeMesh are recognized tags but produce no
	// contacts in the core detector.
	ShapeTypeCapsule
	ShapeTypeMesh
)

// Rigidbody is the dynamics component of an entity.
//
// Mass must be > 0 for non-kinematic bodies; the solver divides by it
// without defending against 0 or negative values, so a violating caller
// gets NaN/Inf trajectories rather than an error.
type Rigidbody struct {
	Mass        float64
	UseGravity  bool
	IsKinematic bool

	// Drags decay velocity as v *= (1 - drag*dt) each fixed step. Values
	// at or above 1/dt invert the sign; that is the documented behavior.
	LinearDrag  float64
	AngularDrag float64

	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	force mgl64.Vec3
}

// NewRigidbody creates a rigidbody with unit mass, gravity enabled and
// the default angular drag.
func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:        1.0,
		UseGravity:  true,
		AngularDrag: 0.05,
	}
}

// AddForce accumulates a force applied during the next integration step,
// as an acceleration contribution force/mass. Cleared after integration.
// Kinematic bodies ignore forces.
func (rb *Rigidbody) AddForce(force mgl64.Vec3) {
	if rb.IsKinematic {
		return
	}
	rb.force = rb.force.Add(force)
}

// ApplyImpulse changes velocity immediately by impulse/mass.
// Kinematic bodies ignore impulses.
func (rb *Rigidbody) ApplyImpulse(impulse mgl64.Vec3) {
	if rb.IsKinematic {
		return
	}
	rb.Velocity = rb.Velocity.Add(impulse.Mul(1.0 / rb.Mass))
}

// ClearForces drops any force accumulated since the last integration
func (rb *Rigidbody) ClearForces() {
	rb.force = mgl64.Vec3{}
}

// Integrate advances the body by one fixed step of size dt, mutating the
// owning entity's transform in place. Kinematic bodies are never moved
// here; external code drives them.
//
// The order is fixed: acceleration, drag decay, then position and
// Euler-angle accumulation. Rotation is not renormalized.
func (rb *Rigidbody) Integrate(tr *Transform, gravity mgl64.Vec3, dt float64) {
	if rb.IsKinematic {
		return
	}

	accel := mgl64.Vec3{}
	if rb.UseGravity {
		accel = gravity
	}
	accel = accel.Add(rb.force.Mul(1.0 / rb.Mass))

	rb.Velocity = rb.Velocity.Add(accel.Mul(dt))
	rb.Velocity = rb.Velocity.Mul(1.0 - rb.LinearDrag*dt)
	rb.AngularVelocity = rb.AngularVelocity.Mul(1.0 - rb.AngularDrag*dt)

	tr.Position = tr.Position.Add(rb.Velocity.Mul(dt))
	tr.Rotation = tr.Rotation.Add(rb.AngularVelocity.Mul(dt))

	rb.ClearForces()
}

// Collider is the collision-surface component of an entity.
// Size feeds box half-extents (full extents = Size * transform scale);
// Radius feeds spheres and capsules; Height feeds capsules only.
type Collider struct {
	Shape     ShapeType
	Size      mgl64.Vec3
	Radius    float64
	Height    float64
	IsTrigger bool
}

// NewBoxCollider creates a box collider with the given full-extent size
func NewBoxCollider(size mgl64.Vec3) *Collider {
	return &Collider{Shape: ShapeTypeBox, Size: size, Radius: 0.5, Height: 2.0}
}

// NewSphereCollider creates a sphere collider with the given radius
func NewSphereCollider(radius float64) *Collider {
	return &Collider{Shape: ShapeTypeSphere, Size: mgl64.Vec3{1, 1, 1}, Radius: radius, Height: 2.0}
}

// HalfExtents returns the box half-extents in world space, scaled by the
// owning transform.
func (c *Collider) HalfExtents(tr Transform) mgl64.Vec3 {
	return mgl64.Vec3{
		c.Size.X() * tr.Scale.X() * 0.5,
		c.Size.Y() * tr.Scale.Y() * 0.5,
		c.Size.Z() * tr.Scale.Z() * 0.5,
	}
}

// ScaledRadius returns the sphere radius scaled by the largest transform
// scale axis. Non-uniform scale does not turn spheres into ellipsoids.
func (c *Collider) ScaledRadius(tr Transform) float64 {
	s := tr.Scale.X()
	if tr.Scale.Y() > s {
		s = tr.Scale.Y()
	}
	if tr.Scale.Z() > s {
		s = tr.Scale.Z()
	}
	return c.Radius * s
}

// AABB returns the world-space bounding box of a box collider centered on
// the owning transform. Rotation is ignored; the core treats boxes as
// axis aligned.
func (c *Collider) AABB(tr Transform) AABB {
	half := c.HalfExtents(tr)
	return AABB{
		Min: tr.Position.Sub(half),
		Max: tr.Position.Add(half),
	}
}

// Mesh is a renderer-facing component; the physics core never reads it
// but the persisted scene format round-trips it.
type Mesh struct {
	MeshPath       string
	Material       string
	CastShadows    bool
	ReceiveShadows bool
}

// LightType enumerates light kinds for the Light component
type LightType int

const (
	LightTypePoint LightType = iota
	LightTypeDirectional
	LightTypeSpot
)

type Light struct {
	Type      LightType
	Color     mgl64.Vec3
	Intensity float64
	Range     float64
	SpotAngle float64
}

// NewLight creates a white point light with the default falloff
func NewLight() *Light {
	return &Light{
		Type:      LightTypePoint,
		Color:     mgl64.Vec3{1, 1, 1},
		Intensity: 1.0,
		Range:     10.0,
		SpotAngle: 45.0,
	}
}

type Camera struct {
	FOV       float64
	NearPlane float64
	FarPlane  float64
	IsMain    bool
}

// NewCamera creates a camera with the default frustum
func NewCamera() *Camera {
	return &Camera{FOV: 60.0, NearPlane: 0.1, FarPlane: 1000.0}
}

// Script references a script asset hosted by the external scripting layer
type Script struct {
	ScriptPath string
	Enabled    bool
}
