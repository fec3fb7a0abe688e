package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansExtractor finds a dominant seed colour in an image using k-means
// clustering over sampled pixels. The random source is fixed-seeded so
// extraction is deterministic for a given image.
type KMeansExtractor struct {
	clusters      int
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

// NewKMeansExtractor creates a KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		clusters:      8,
		maxIterations: 20,
		convergence:   2.0,
		rng:           rand.New(rand.NewSource(1)),
	}
}

// Dominant returns the most prominent colour in the image, weighting
// cluster size against saturation so a large grey region does not beat a
// strong accent colour.
func (e *KMeansExtractor) Dominant(img image.Image) (RGB, error) {
	if img == nil {
		return RGB{}, fmt.Errorf("image cannot be nil")
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return RGB{}, fmt.Errorf("no pixels found in image")
	}

	k := e.clusters
	if k > len(pixels) {
		k = len(pixels)
	}

	centroids, weights := e.kmeans(pixels, k)

	best := 0
	bestScore := -1.0
	for i, c := range centroids {
		rgb := RGB{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b)}
		_, sat, _ := rgbToHSL(rgb)
		score := weights[i] * (0.25 + sat)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	c := centroids[best]
	return RGB{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b)}, nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	r, g, b float64
}

// distance calculates the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples pixels from the image on a grid. Large images are
// subsampled to keep the clustering cost bounded.
func samplePixels(img image.Image) []point3D {
	const maxSamples = 2000

	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]point3D, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			rgb := ToRGB(img.At(x, y))
			pixels = append(pixels, point3D{r: float64(rgb.R), g: float64(rgb.G), b: float64(rgb.B)})
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}

	return pixels
}

// kmeans performs k-means clustering over the sampled points.
// Returns centroids and their normalized weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initializeCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		// Assign each point to its nearest centroid.
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Converged when under 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// initializeCentroids seeds centroids with k-means++ for better spread
// than uniform random selection.
func (e *KMeansExtractor) initializeCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if dist := point.distance(centroid); dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Remaining points coincide with existing centroids; perturb
			// the last centroid rather than looping forever.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := e.rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the centroid nearest to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recomputes centroid positions from assignments.
func (e *KMeansExtractor) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].r += point.r
		sums[cluster].g += point.g
		sums[cluster].b += point.b
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			// Empty cluster - reseed from the data.
			centroids[i] = points[e.rng.Intn(len(points))]
		}
	}

	return centroids
}
