package noise

import "math"

// TranslatePoint moves the input point before sampling the source. The
// fourth translation belongs to the unused w axis and is accepted for
// parameter compatibility.
func TranslatePoint(source Sampler, dx, dy, dz, _ float64) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return source.Sample(x+dx, y+dy, z+dz)
	})
}

// ScalePoint multiplies the input point's coordinates before sampling the
// source. The fourth scale belongs to the unused w axis.
func ScalePoint(source Sampler, sx, sy, sz, _ float64) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return source.Sample(x*sx, y*sy, z*sz)
	})
}

// RotatePoint rotates the input point around the x, y and z axes by the
// given angles in degrees before sampling the source. The fourth angle
// belongs to the unused w axis.
func RotatePoint(source Sampler, ax, ay, az, _ float64) Sampler {
	xr := ax * math.Pi / 180.0
	yr := ay * math.Pi / 180.0
	zr := az * math.Pi / 180.0

	sinX, cosX := math.Sincos(xr)
	sinY, cosY := math.Sincos(yr)
	sinZ, cosZ := math.Sincos(zr)

	// Row-major rotation matrix for the combined x, y, z rotation.
	m00 := cosY * cosZ
	m01 := -cosY * sinZ
	m02 := sinY
	m10 := sinX*sinY*cosZ + cosX*sinZ
	m11 := -sinX*sinY*sinZ + cosX*cosZ
	m12 := -sinX * cosY
	m20 := -cosX*sinY*cosZ + sinX*sinZ
	m21 := cosX*sinY*sinZ + sinX*cosZ
	m22 := cosX * cosY

	return SamplerFunc(func(x, y, z float64) float64 {
		return source.Sample(
			m00*x+m01*y+m02*z,
			m10*x+m11*y+m12*z,
			m20*x+m21*y+m22*z,
		)
	})
}

// Displace offsets each coordinate of the input point by the sample of a
// per-axis displacement source before sampling the main source. The fourth
// displacement source belongs to the unused w axis.
func Displace(source, xd, yd, zd, _ Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return source.Sample(
			x+xd.Sample(x, y, z),
			y+yd.Sample(x, y, z),
			z+zd.Sample(x, y, z),
		)
	})
}
