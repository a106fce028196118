package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter (0 = pinhole, no defocus blur)
	FocusDistance float64   // Distance to the plane in focus (0 = distance to LookAt)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z.
// With a 90° field of view it spans the same viewport as NewDefaultCamera.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 1,
	}
}

// Camera generates rays for rendering. All fields are fixed at construction,
// so a Camera may be shared by any number of goroutines.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
	focusDistance   float64
}

// NewDefaultCamera creates the simple camera: origin at zero, viewport two units
// high at focal length one, looking down -Z.
func NewDefaultCamera(aspectRatio float64) (*Camera, error) {
	if !core.IsFinite(aspectRatio) || aspectRatio <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAspectRatio, aspectRatio)
	}

	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		u:               core.NewVec3(1, 0, 0),
		v:               core.NewVec3(0, 1, 0),
		w:               core.NewVec3(0, 0, 1),
		focusDistance:   focalLength,
	}, nil
}

// NewCamera creates a positionable thin-lens camera with optional defocus blur
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// w points away from the look-at target, u to the right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		focusDistance:   focusDistance,
	}, nil
}

// Validate checks that the configuration yields a well-defined camera
func (c CameraConfig) Validate() error {
	if !c.Center.IsFinite() || !c.LookAt.IsFinite() || !c.Up.IsFinite() {
		return fmt.Errorf("%w: non-finite position or direction", ErrDegenerateCamera)
	}
	if c.Center.Subtract(c.LookAt).Length() == 0 {
		return fmt.Errorf("%w: center and look-at coincide", ErrDegenerateCamera)
	}
	if c.Up.Cross(c.Center.Subtract(c.LookAt).Normalize()).Length() < 1e-12 {
		return fmt.Errorf("%w: up vector is zero or parallel to the view direction", ErrDegenerateCamera)
	}
	if !core.IsFinite(c.VFov) || c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: %v", ErrInvalidFieldOfView, c.VFov)
	}
	if !core.IsFinite(c.AspectRatio) || c.AspectRatio <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if !core.IsFinite(c.Aperture) || c.Aperture < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAperture, c.Aperture)
	}
	if !core.IsFinite(c.FocusDistance) || c.FocusDistance < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFocusDistance, c.FocusDistance)
	}
	return nil
}

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1.
// A lens with non-zero radius offsets the origin within the aperture disk;
// a pinhole camera draws nothing from the sampler.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// LensRadius returns half the aperture
func (c *Camera) LensRadius() float64 { return c.lensRadius }

// FocusDistance returns the distance to the plane of perfect focus
func (c *Camera) FocusDistance() float64 { return c.focusDistance }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }

// Basis returns the orthonormal camera basis (right, up, backward)
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// MergeCameraConfig returns base with every non-zero field of override applied on top
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// CameraOverride holds explicitly chosen camera settings. Unlike
// MergeCameraConfig, a set field is applied even when it is zero, so an
// aperture of 0 turns defocus blur off.
type CameraOverride struct {
	Center        *core.Vec3
	LookAt        *core.Vec3
	Up            *core.Vec3
	VFov          *float64
	AspectRatio   *float64
	Aperture      *float64
	FocusDistance *float64
}

// Apply returns base with every set field of the override
func (o CameraOverride) Apply(base CameraConfig) CameraConfig {
	result := base
	if o.Center != nil {
		result.Center = *o.Center
	}
	if o.LookAt != nil {
		result.LookAt = *o.LookAt
	}
	if o.Up != nil {
		result.Up = *o.Up
	}
	if o.VFov != nil {
		result.VFov = *o.VFov
	}
	if o.AspectRatio != nil {
		result.AspectRatio = *o.AspectRatio
	}
	if o.Aperture != nil {
		result.Aperture = *o.Aperture
	}
	if o.FocusDistance != nil {
		result.FocusDistance = *o.FocusDistance
	}
	return result
}
