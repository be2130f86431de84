package viewcontrol

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"glscene/common"
)

const (
	MaxAltitude = 89.9
	MaxAzimuth  = 180.0
)

// AltAzController places the COP on a sphere around the VRP, given by an
// altitude above the xy plane, an azimuth from the x axis and a distance.
type AltAzController struct {
	*ViewController

	mu       sync.Mutex
	altitude float64
	azimuth  float64
	distance float64
	minDist  float64
	maxDist  float64
}

// NewAltAz uses altitude 45, azimuth 45, distance 10 in [1, 20].
func NewAltAz() *AltAzController {
	return NewAltAzWith(45, 45, 1, 20, 10)
}

// NewAltAzWith builds a controller with angles in degrees. The COP is set
// from them; nothing is applied until Apply or one of the setters runs.
func NewAltAzWith(altitude, azimuth, minDistance, maxDistance, distance float64) *AltAzController {
	a := &AltAzController{ViewController: New()}
	a.setDistanceRange(minDistance, maxDistance)
	a.setDistance(distance)
	a.altitude = clampAltitude(altitude)
	a.azimuth = clampAzimuth(azimuth)
	a.updateCOP()
	return a
}

func clampAltitude(deg float64) float64 {
	return common.Clamp(deg, -MaxAltitude, MaxAltitude)
}

func clampAzimuth(deg float64) float64 {
	return common.Clamp(deg, -MaxAzimuth, MaxAzimuth)
}

func (a *AltAzController) Altitude() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.altitude
}

func (a *AltAzController) Azimuth() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.azimuth
}

func (a *AltAzController) Distance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.distance
}

func (a *AltAzController) DistanceRange() (lo, hi float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.minDist, a.maxDist
}

// SetAltitude clamps to +-MaxAltitude degrees and applies the view.
func (a *AltAzController) SetAltitude(deg float64) {
	a.mu.Lock()
	a.altitude = clampAltitude(deg)
	a.mu.Unlock()
	a.update()
}

// SetAzimuth clamps to +-MaxAzimuth degrees and applies the view.
func (a *AltAzController) SetAzimuth(deg float64) {
	a.mu.Lock()
	a.azimuth = clampAzimuth(deg)
	a.mu.Unlock()
	a.update()
}

// SetDistance uses |d|, with 0 meaning 1, kept inside the distance range.
func (a *AltAzController) SetDistance(d float64) {
	a.mu.Lock()
	a.setDistance(d)
	a.mu.Unlock()
	a.update()
}

// SetDistanceRange swaps reversed bounds and widens an empty range by one.
func (a *AltAzController) SetDistanceRange(lo, hi float64) {
	a.mu.Lock()
	a.setDistanceRange(lo, hi)
	a.distance = common.Clamp(a.distance, a.minDist, a.maxDist)
	a.mu.Unlock()
	a.update()
}

// Rotate moves both angles by the given amounts in degrees.
func (a *AltAzController) Rotate(dAlt, dAz float64) {
	a.mu.Lock()
	a.altitude = clampAltitude(a.altitude + dAlt)
	a.azimuth = clampAzimuth(a.azimuth + dAz)
	a.mu.Unlock()
	a.update()
}

// Zoom multiplies the distance by factor.
func (a *AltAzController) Zoom(factor float64) {
	a.mu.Lock()
	a.setDistance(a.distance * factor)
	a.mu.Unlock()
	a.update()
}

// Caller holds a.mu, or a is not shared yet.
func (a *AltAzController) setDistance(d float64) {
	d = common.Abs(d)
	if d == 0 {
		d = 1
	}
	a.distance = common.Clamp(d, a.minDist, a.maxDist)
}

// Caller holds a.mu, or a is not shared yet.
func (a *AltAzController) setDistanceRange(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		hi = lo + 1
	}
	a.minDist, a.maxDist = lo, hi
}

func (a *AltAzController) update() {
	a.updateCOP()
	a.Apply()
}

func (a *AltAzController) updateCOP() {
	a.mu.Lock()
	alt := mgl64.DegToRad(a.altitude)
	az := mgl64.DegToRad(a.azimuth)
	d := a.distance
	a.mu.Unlock()

	r := d * math.Cos(alt)
	offset := mgl64.Vec3{r * math.Cos(az), r * math.Sin(az), d * math.Sin(alt)}
	a.SetCOP(a.VRP().Add(offset))
}
