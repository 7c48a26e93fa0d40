package sleigh

import "math/rand"

const (
	SegmentWidth = 50.0  // Horizontal distance between height samples
	blockGap     = 10.0  // Space between consecutive city blocks
	blockBuffer  = 200.0 // How far a block must leave the screen before it is dropped
	seedBuffer   = 600.0 // Extra width generated beyond the screen
	seedBlocks   = 40
)

// Terrain silhouette types named in the level table.
const (
	TerrainMountains = "MOUNTAINS"
	TerrainCity      = "CITY"
	TerrainHills     = "HILLS"
	TerrainSpikes    = "SPIKES"
)

// Block is one building in a city skyline layer, positioned relative to
// the layer origin.
type Block struct {
	X, W, H float64
}

// Layer is one parallax stratum. Points hold silhouette heights sampled
// every SegmentWidth; Blocks hold the skyline for city levels.
type Layer struct {
	Points []float64
	Blocks []Block
	Speed  float64 // Fraction of forward speed
	Offset float64 // In (-SegmentWidth, 0]

	roughness float64
	min, max  float64
}

type layerSpec struct {
	speed, base, roughness, min, max float64
}

var layerSpecs = [3]layerSpec{
	{speed: 0.1, base: 250, roughness: 60, min: 150, max: 350}, // Far
	{speed: 0.3, base: 150, roughness: 20, min: 50, max: 200},  // Mid
	{speed: 0.6, base: 60, roughness: 20, min: 20, max: 100},   // Near
}

// Terrain holds the three parallax layers and extends them forever
// without growing.
type Terrain struct {
	Layers [3]Layer
	rng    *rand.Rand
}

// NewTerrain seeds every layer wide enough to cover width plus a buffer.
func NewTerrain(width float64, rng *rand.Rand) *Terrain {
	t := &Terrain{rng: rng}
	for i, spec := range layerSpecs {
		t.Layers[i] = t.seedLayer(spec, width)
	}
	return t
}

func (t *Terrain) seedLayer(spec layerSpec, width float64) Layer {
	l := Layer{Speed: spec.speed, roughness: spec.roughness, min: spec.min, max: spec.max}
	y := clampRange(spec.base, spec.min, spec.max)
	for x := 0.0; x <= width+seedBuffer; x += SegmentWidth {
		l.Points = append(l.Points, y)
		y = l.step(y, t.rng)
	}
	x := t.rng.Float64() * 20
	for i := 0; i < seedBlocks; i++ {
		b := t.newBlock(x)
		l.Blocks = append(l.Blocks, b)
		x = b.X + b.W + blockGap
	}
	return l
}

// step is the random walk: a uniform delta within half the roughness on
// either side, clamped into the layer band.
func (l *Layer) step(prev float64, rng *rand.Rand) float64 {
	return clampRange(prev+(rng.Float64()-0.5)*l.roughness, l.min, l.max)
}

func (t *Terrain) newBlock(x float64) Block {
	return Block{X: x, W: 40 + t.rng.Float64()*60, H: 100 + t.rng.Float64()*200}
}

// Advance scrolls every layer by its share of delta.
func (t *Terrain) Advance(delta float64) {
	for i := range t.Layers {
		t.advanceLayer(&t.Layers[i], delta)
	}
}

func (t *Terrain) advanceLayer(l *Layer, delta float64) {
	l.Offset -= delta * l.Speed
	for l.Offset <= -SegmentWidth {
		l.Offset += SegmentWidth
		last := l.Points[len(l.Points)-1]
		copy(l.Points, l.Points[1:])
		l.Points[len(l.Points)-1] = l.step(last, t.rng)

		for j := range l.Blocks {
			l.Blocks[j].X -= SegmentWidth
		}
		for len(l.Blocks) > 0 && l.Blocks[0].X+l.Blocks[0].W+l.Offset < -blockBuffer {
			tail := l.Blocks[len(l.Blocks)-1]
			copy(l.Blocks, l.Blocks[1:])
			l.Blocks[len(l.Blocks)-1] = t.newBlock(tail.X + tail.W + blockGap)
		}
	}
}

// Roughness returns the largest allowed gap between adjacent samples.
func (l *Layer) Roughness() float64 {
	return l.roughness
}

// HeightAt samples the silhouette at screen x by linear interpolation.
func (l *Layer) HeightAt(x float64) float64 {
	if len(l.Points) == 0 {
		return 0
	}
	pos := (x - l.Offset) / SegmentWidth
	i := int(pos)
	if i < 0 {
		return l.Points[0]
	}
	if i >= len(l.Points)-1 {
		return l.Points[len(l.Points)-1]
	}
	frac := pos - float64(i)
	return l.Points[i] + (l.Points[i+1]-l.Points[i])*frac
}

// Star is a background star drifting slowly left.
type Star struct {
	X, Y, Size, Phase float64
}

// Cloud is a background cloud with its own drift speed.
type Cloud struct {
	X, Y, Speed, Scale float64
}

// Sky holds the decorative background that scrolls behind the terrain.
type Sky struct {
	Stars  []Star
	Clouds []Cloud
	width  float64
	height float64
	rng    *rand.Rand
}

func NewSky(width, height float64, rng *rand.Rand) *Sky {
	s := &Sky{width: width, height: height, rng: rng}
	for i := 0; i < 150; i++ {
		s.Stars = append(s.Stars, Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * (height / 1.5),
			Size:  rng.Float64() * 2,
			Phase: rng.Float64() * 6.283,
		})
	}
	for i := 0; i < 10; i++ {
		s.Clouds = append(s.Clouds, Cloud{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * (height / 3),
			Speed: rng.Float64()*20 + 5,
			Scale: rng.Float64() + 0.5,
		})
	}
	return s
}

// ScrollStars moves the star field; stars wrap around.
func (s *Sky) ScrollStars(speed, scale float64) {
	for i := range s.Stars {
		st := &s.Stars[i]
		st.X -= speed * 0.02 * scale
		if st.X < 0 {
			st.X += s.width
		}
	}
}

// DriftClouds moves clouds by their own speed plus a share of forward speed.
func (s *Sky) DriftClouds(speed, scale float64) {
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X -= (c.Speed + speed*0.1) * scale * 0.1
		if c.X < -150 {
			c.X = s.width + 150
			c.Y = s.rng.Float64() * (s.height / 2.5)
		}
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
