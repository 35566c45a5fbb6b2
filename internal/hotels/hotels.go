// Package hotels builds the synthetic Mexico City hotel dataset and the
// per-user aggregates shown next to it.
package hotels

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"montecarlo-go/pkg/convolve"
	"montecarlo-go/pkg/normalboxmueller"
	"montecarlo-go/pkg/randomnormal"
)

// Dataset centre (Zócalo, CDMX).
const (
	CenterLat = 19.4326
	CenterLon = -99.1332
)

var (
	Categories = []string{"Económico", "Estándar", "Lujo", "Boutique"}
	Users      = []string{"Alice", "Bob", "Charly"}
)

type Hotel struct {
	Name      string  `json:"nombre"`
	Preview   string  `json:"preview"`
	Lat       float64 `json:"latitud"`
	Lon       float64 `json:"longitud"`
	Category  string  `json:"categoria"`
	Views     int     `json:"vistas"`
	Available bool    `json:"disponible"`
	Rating    int     `json:"evaluacion"`
	User      string  `json:"usuario"`
}

// Generate draws n hotels from a stream seeded with seed. Columns are drawn
// one after another, so the dataset only depends on n and seed.
func Generate(n int, seed int64) ([]Hotel, error) {
	if n <= 0 {
		return nil, eris.Errorf("hotels: count must be positive, got %d", n)
	}

	rnd := normalboxmueller.NewRand(seed)
	gen := randomnormal.NewNormalRandGenerator()

	lats := gen.RandN(rnd, n, 0, 1)
	lons := gen.RandN(rnd, n, 0, 1)

	hs := make([]Hotel, n)
	for i := range hs {
		hs[i].Name = fmt.Sprintf("Hotel %d", i)
		hs[i].Preview = fmt.Sprintf("https://picsum.photos/400/200?lock=%d", i)
		hs[i].Lat = lats[i]/100 + CenterLat
		hs[i].Lon = lons[i]/100 + CenterLon
	}
	for i := range hs {
		hs[i].Category = normalboxmueller.Choice(rnd, Categories)
	}
	views := normalboxmueller.NewUniDistParams(0, 2000)
	for i := range hs {
		hs[i].Views = views.IntN(rnd)
	}
	for i := range hs {
		hs[i].Available = normalboxmueller.Choice(rnd, []bool{true, false})
	}
	rating := normalboxmueller.NewUniDistParams(50, 100)
	for i := range hs {
		hs[i].Rating = rating.IntN(rnd)
	}
	for i := range hs {
		hs[i].User = normalboxmueller.Choice(rnd, Users)
	}

	return hs, nil
}

// Filter keeps hotels whose user and category are both selected.
func Filter(hs []Hotel, users, categories []string) []Hotel {
	out := make([]Hotel, 0, len(hs))
	for _, h := range hs {
		if slices.Contains(users, h.User) && slices.Contains(categories, h.Category) {
			out = append(out, h)
		}
	}
	return out
}

// ViewsByUser sums views per user.
func ViewsByUser(hs []Hotel) map[string]int {
	totals := make(map[string]int)
	for _, h := range hs {
		totals[h.User] += h.Views
	}
	return totals
}

// Smoothing kernels for view series.
const (
	SmoothBox      = "box"
	SmoothGaussian = "gaussian"
)

// ViewSeries lists every selected user's views in dataset order. A window
// above one replaces each series by its trailing rolling mean, dropping the
// first window-1 incomplete samples.
func ViewSeries(hs []Hotel, users []string, window int) map[string][]float64 {
	return smooth(rawSeries(hs, users), window, convolve.NewBoxKernel)
}

// GaussianViewSeries is ViewSeries with a normalised Gaussian of sigma
// window/2 in place of the flat rolling mean.
func GaussianViewSeries(hs []Hotel, users []string, window int) map[string][]float64 {
	return smooth(rawSeries(hs, users), window, func(n int) *convolve.ConvolveKernel {
		return convolve.NewGaussianKernel(float64(n)/2, n)
	})
}

// CheckSmoothing accepts the kernel names SmoothedViewSeries understands.
func CheckSmoothing(kind string) error {
	switch kind {
	case "", SmoothBox, SmoothGaussian:
		return nil
	}
	return eris.Errorf("hotels: unknown smoothing %q", kind)
}

// SmoothedViewSeries picks the kernel by name; an empty kind means SmoothBox.
func SmoothedViewSeries(hs []Hotel, users []string, window int, kind string) (map[string][]float64, error) {
	if err := CheckSmoothing(kind); err != nil {
		return nil, err
	}
	if kind == SmoothGaussian {
		return GaussianViewSeries(hs, users, window), nil
	}
	return ViewSeries(hs, users, window), nil
}

func rawSeries(hs []Hotel, users []string) map[string][]float64 {
	series := make(map[string][]float64, len(users))
	for _, u := range users {
		series[u] = []float64{}
	}
	for _, h := range hs {
		if s, ok := series[h.User]; ok {
			series[h.User] = append(s, float64(h.Views))
		}
	}
	return series
}

func smooth(series map[string][]float64, window int, kernel func(int) *convolve.ConvolveKernel) map[string][]float64 {
	if window <= 1 {
		return series
	}
	ck := kernel(window)
	for u, s := range series {
		series[u] = ck.Convolve(s)
	}
	return series
}

// FeatureCollection converts hotels to GeoJSON points at [lon, lat].
func FeatureCollection(hs []Hotel) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(hs)),
	}
	for _, h := range hs {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       h.Name,
			Geometry: geom.NewPointFlat(geom.XY, []float64{h.Lon, h.Lat}),
			Properties: map[string]interface{}{
				"nombre":     h.Name,
				"categoria":  h.Category,
				"vistas":     h.Views,
				"disponible": h.Available,
				"evaluacion": h.Rating,
				"usuario":    h.User,
				"preview":    h.Preview,
			},
		})
	}
	return fc
}

// GeoJSON encodes hotels as a FeatureCollection.
func GeoJSON(hs []Hotel) ([]byte, error) {
	data, err := json.Marshal(FeatureCollection(hs))
	if err != nil {
		return nil, eris.Wrap(err, "hotels: encode geojson")
	}
	return data, nil
}
