package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Local axes in the character's frame: +Z forward, +Y up, +X right.
var (
	localForward = mgl64.Vec3{0, 0, 1}
	localRight   = mgl64.Vec3{1, 0, 0}
)

// LookRotation returns the orientation whose forward axis points along
// forward and whose up axis is as close to up as possible.
// forward must not be parallel to up.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	f := forward.Normalize()
	r := up.Cross(f).Normalize()
	u := f.Cross(r)

	m := mgl64.Mat4{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		f[0], f[1], f[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}

// AngleBetween returns the angle in degrees between two orientations.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Min(math.Abs(a.Dot(b)), 1)
	return mgl64.RadToDeg(2 * math.Acos(d))
}

// RotateTowards rotates from toward to by at most maxDegrees.
func RotateTowards(from, to mgl64.Quat, maxDegrees float64) mgl64.Quat {
	angle := AngleBetween(from, to)
	if angle == 0 || maxDegrees >= angle {
		return to
	}
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, maxDegrees/angle).Normalize()
}
