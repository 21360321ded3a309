package branding

import (
	"math"
	"sort"
)

// maxIterations bounds the clustering loop. Non-convergence terminates with
// the best-effort centroids rather than looping.
const maxIterations = 20

// pixelSample is one weighted entry in the filtered colour population.
type pixelSample struct {
	color  RGB
	weight int
}

// colorCluster is a k-means centroid together with the aggregate weight of
// its assigned members.
type colorCluster struct {
	color  RGB
	weight int
}

// sortedPopulation flattens a sampled population into a weight-descending
// slice with a fixed tie order, so clustering never depends on map iteration
// order.
func sortedPopulation(population map[RGB]int) []pixelSample {
	samples := make([]pixelSample, 0, len(population))
	for c, w := range population {
		samples = append(samples, pixelSample{color: c, weight: w})
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].weight != samples[j].weight {
			return samples[i].weight > samples[j].weight
		}
		return samples[i].color.packed() < samples[j].color.packed()
	})
	return samples
}

// quantize clusters the weighted population into k representative colours
// using k-means over Euclidean RGB distance. The returned clusters are
// ordered by aggregate weight descending.
//
// Seeding is deterministic: the k most frequent colours become the initial
// centroids, padded with neutral grey when fewer than k distinct colours
// exist. samples must be ordered weight-descending (see sortedPopulation).
func quantize(samples []pixelSample, k int) []colorCluster {
	centroids := seedCentroids(samples, k)
	assignments := make([]int, len(samples))

	for iter := 0; iter < maxIterations; iter++ {
		for i, s := range samples {
			assignments[i] = nearestCentroid(s.color, centroids)
		}

		next, moved := recomputeCentroids(samples, assignments, centroids)
		centroids = next
		if !moved {
			break
		}
	}

	// Final assignment pass so the reported weights match the centroids we
	// actually return, including the iteration-capped case.
	weights := make([]int, len(centroids))
	for _, s := range samples {
		weights[nearestCentroid(s.color, centroids)] += s.weight
	}

	clusters := make([]colorCluster, len(centroids))
	for i, c := range centroids {
		clusters[i] = colorCluster{color: c, weight: weights[i]}
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].weight > clusters[j].weight
	})

	return clusters
}

// seedCentroids picks the k heaviest colours as initial centroids, padding
// with neutral grey so clustering always starts with exactly k centroids.
func seedCentroids(samples []pixelSample, k int) []RGB {
	centroids := make([]RGB, k)
	for i := range centroids {
		if i < len(samples) {
			centroids[i] = samples[i].color
		} else {
			centroids[i] = neutralGray
		}
	}
	return centroids
}

// nearestCentroid returns the index of the centroid closest to c by
// Euclidean RGB distance. Ties go to the lowest index.
func nearestCentroid(c RGB, centroids []RGB) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, centroid := range centroids {
		d := rgbDistanceSquared(c, centroid)
		if d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recomputeCentroids replaces each centroid with the weight-weighted mean of
// its assigned members, rounded to integer RGB. Centroids with no members
// are left unchanged. moved reports whether any rounded centroid changed.
func recomputeCentroids(samples []pixelSample, assignments []int, centroids []RGB) (next []RGB, moved bool) {
	type sum struct {
		r, g, b float64
		weight  float64
	}
	sums := make([]sum, len(centroids))

	for i, s := range samples {
		w := float64(s.weight)
		agg := &sums[assignments[i]]
		agg.r += float64(s.color.R) * w
		agg.g += float64(s.color.G) * w
		agg.b += float64(s.color.B) * w
		agg.weight += w
	}

	next = make([]RGB, len(centroids))
	for i, agg := range sums {
		if agg.weight == 0 {
			next[i] = centroids[i]
			continue
		}
		next[i] = RGB{
			R: uint8(math.Round(agg.r / agg.weight)),
			G: uint8(math.Round(agg.g / agg.weight)),
			B: uint8(math.Round(agg.b / agg.weight)),
		}
		if next[i] != centroids[i] {
			moved = true
		}
	}
	return next, moved
}

// rgbDistanceSquared is the squared Euclidean distance between two colours
// in RGB space. Plain RGB distance is used rather than a perceptual space so
// results stay reproducible across versions.
func rgbDistanceSquared(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return dr*dr + dg*dg + db*db
}
