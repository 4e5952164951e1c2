package sbuffer

import "github.com/mikenye/sbuffer/numeric"

// The geometry kernel reconstructs a view-plane point (x_view, z_view) from
// a screen-space column x and its reciprocal depth w: z_view = 1/w and
// x_view = (x - size/2) * z_view / z_near. intersect2D and spanIntersect
// operate entirely in this reconstructed view plane, which is where a
// perspective-correct segment intersection becomes an ordinary 2-D line
// intersection.

// viewPlanePoint is a point in the reconstructed view plane: x is the
// perspective-projected abscissa, z is the view-space depth (not its
// reciprocal — despite the z-ish name, it is 1/w).
type viewPlanePoint struct {
	x, z float64
}

// cross2D is the signed 2-D cross product of (ax, az) and (bx, bz).
func cross2D(ax, az, bx, bz float64) float64 {
	return ax*bz - az*bx
}

// crossStatus classifies the outcome of intersect2D.
type crossStatus int

const (
	// statusIntersecting means both crossing parameters lie strictly
	// inside (eps, 1-eps); the intersection point is valid.
	statusIntersecting crossStatus = iota
	// statusParallel means the segments' direction vectors are
	// parallel but the segments are not collinear.
	statusParallel
	// statusDegenerate means the segments are collinear.
	statusDegenerate
	// statusNotIntersecting means the crossing parameters exist but
	// fall outside the open interval (eps, 1-eps).
	statusNotIntersecting
)

// intersect2D computes the intersection of segment AB with segment CD in
// the view plane, using crossing parameters t, q in (eps, 1-eps).
func intersect2D(a, b, c, d viewPlanePoint, eps float64) (viewPlanePoint, crossStatus) {
	ux, uz := b.x-a.x, b.z-a.z
	vx, vz := d.x-c.x, d.z-c.z
	cax, caz := c.x-a.x, c.z-a.z

	numerT := cross2D(cax, caz, vx, vz)
	numerQ := cross2D(cax, caz, ux, uz)
	denom := cross2D(ux, uz, vx, vz)

	if denom == 0 {
		if numerT != 0 {
			return viewPlanePoint{}, statusParallel
		}
		return viewPlanePoint{}, statusDegenerate
	}

	t := numerT / denom
	q := numerQ / denom
	if numeric.FloatLessThanOrEqualTo(t, 0, eps) || numeric.FloatGreaterThanOrEqualTo(t, 1, eps) ||
		numeric.FloatLessThanOrEqualTo(q, 0, eps) || numeric.FloatGreaterThanOrEqualTo(q, 1, eps) {
		return viewPlanePoint{}, statusNotIntersecting
	}

	return viewPlanePoint{x: t*ux + a.x, z: t*uz + a.z}, statusIntersecting
}

// toViewPlane reconstructs the view-plane point for screen column x with
// reciprocal depth w, given raster width size and near-plane distance zNear.
func toViewPlane(x, w, size, zNear float64) viewPlanePoint {
	z := 1 / w
	return viewPlanePoint{x: (x - size/2) * z / zNear, z: z}
}

// spanIntersect consumes two screen-space spans U = [ux0,ux1) with depths
// (uw0,uw1), and V = [vx0,vx1) with depths (vw0,vw1), reconstructs their
// endpoints in the view plane, and resolves both the crossing status and
// the leftness oracle used throughout the insertion engine to decide which
// span is in front at a shared abscissa.
//
// When the segments cross, leftness is the signed 2-D cross of
// (U.start - P) and (V.start - P), where P is the intersection point. When
// they don't cross (crossing parameters out of range, or parallel but not
// collinear), leftness is the cross of (U.end - V.start) and V's direction
// vector (see the Open Question in the design notes). Collinear segments
// get a leftness of 0.
// Positive leftness means U is nearer than V at the shared abscissa;
// non-positive means behind or exactly on the line.
//
// Returns the crossing status, the intersection's screen-space x (valid
// only when status is statusIntersecting), and the leftness value.
func spanIntersect(ux0, uw0, ux1, uw1, vx0, vw0, vx1, vw1, size, zNear, eps float64) (status crossStatus, screenX, leftness float64) {
	halfSize := size * 0.5

	a := toViewPlane(ux0, uw0, size, zNear)
	b := toViewPlane(ux1, uw1, size, zNear)
	c := toViewPlane(vx0, vw0, size, zNear)
	d := toViewPlane(vx1, vw1, size, zNear)

	intersection, status := intersect2D(a, b, c, d, eps)

	if status != statusIntersecting {
		leftness = 0
		if status == statusNotIntersecting || status == statusParallel {
			// U's end point relative to V's start, versus V's own
			// direction vector: resolves which span originates in
			// front when the two merely touch or run parallel.
			leftness = cross2D(b.x-c.x, b.z-c.z, d.x-c.x, d.z-c.z)
		}
		return status, 0, leftness
	}

	screenX = intersection.x*zNear/intersection.z + halfSize
	leftness = cross2D(a.x-intersection.x, a.z-intersection.z, c.x-intersection.x, c.z-intersection.z)

	return statusIntersecting, screenX, leftness
}
