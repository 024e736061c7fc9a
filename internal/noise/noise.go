package noise

import "math"

// Field is a seeded simplex noise sampler. Identical seeds produce
// bit-identical output sequences for identical input coordinates; the
// permutation shuffle uses an explicit LCG stream rather than a library RNG
// so results reproduce across ports.
type Field struct {
	perm      [512]int
	permMod12 [512]int
}

// The 12 gradient vectors shared by the 2D and 3D samplers.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Skew factors for 2D and 3D simplex lattices.
var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
)

const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// NewField builds a sampler from a seed.
func NewField(seed int64) *Field {
	f := &Field{}

	var base [256]int
	for i := range base {
		base[i] = i
	}

	// Fisher-Yates over the identity permutation, driven by an LCG
	// (Knuth MMIX constants) seeded from the input.
	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(uint64(s>>16) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	// Duplicate to 512 so lattice lookups never need wrap-around masking.
	for i := 0; i < 256; i++ {
		f.perm[i] = base[i]
		f.perm[i+256] = base[i]
		f.permMod12[i] = base[i] % 12
		f.permMod12[i+256] = f.permMod12[i]
	}
	return f
}

func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

// Noise2 samples 2D simplex noise at (x, y). Output is in [-1, 1].
func (f *Field) Noise2(x, y float64) float64 {
	// Skew into triangular lattice space.
	s := (x + y) * f2
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Pick the containing triangle by coordinate ordering.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := f.permMod12[ii+f.perm[jj]]
	gi1 := f.permMod12[ii+i1+f.perm[jj+j1]]
	gi2 := f.permMod12[ii+1+f.perm[jj+1]]

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad3[gi0], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad3[gi1], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad3[gi2], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// Noise3 samples 3D simplex noise at (x, y, z). Output is in [-1, 1].
func (f *Field) Noise3(x, y, z float64) float64 {
	s := (x + y + z) * f3
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	k := int(math.Floor(z + s))

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the coordinates to pick the containing tetrahedron.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2.0*g3
	y2 := y0 - float64(j2) + 2.0*g3
	z2 := z0 - float64(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := f.permMod12[ii+f.perm[jj+f.perm[kk]]]
	gi1 := f.permMod12[ii+i1+f.perm[jj+j1+f.perm[kk+k1]]]
	gi2 := f.permMod12[ii+i2+f.perm[jj+j2+f.perm[kk+k2]]]
	gi3 := f.permMod12[ii+1+f.perm[jj+1+f.perm[kk+1]]]

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	return 32.0 * (n0 + n1 + n2 + n3)
}

// FBM layers octaves of Noise2, halving amplitude and doubling frequency
// by default. Normalized by total amplitude so output stays in [-1, 1].
func (f *Field) FBM(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for range octaves {
		sum += f.Noise2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Ridged produces sharp ridge-like features: each octave contributes
// (1-|noise|)^2 scaled by the previous octave's signal. Unnormalized;
// callers interpret the magnitude.
func (f *Field) Ridged(x, y float64, octaves int) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	weight := 1.0
	for range octaves {
		signal := 1.0 - math.Abs(f.Noise2(x*frequency, y*frequency))
		signal *= signal
		signal *= weight

		weight = signal * 2.0
		if weight > 1 {
			weight = 1
		}
		if weight < 0 {
			weight = 0
		}

		sum += signal * amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return sum
}
