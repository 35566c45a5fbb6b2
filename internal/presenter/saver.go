package presenter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"montecarlo-go/internal/classifier"
	"montecarlo-go/internal/hotels"
)

// ResultsFileName is the download name of the classification table.
const ResultsFileName = "resultados_clasificacion.csv"

var (
	resultsHeader = []string{"X", "Y", "Distancia Clase 0", "Distancia Clase 1", "Clase Predicha"}
	cloudsHeader  = []string{"x", "y", "Clase"}
	hotelsHeader  = []string{"Nombre", "Usuario", "Categoría", "Vistas", "Disponible", "Evaluación", "Latitud", "Longitud"}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteResultsCSV writes one row per result with distances rounded to two
// decimals.
func WriteResultsCSV(w io.Writer, results []classifier.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(resultsHeader); err != nil {
		return eris.Wrap(err, "presenter: write results header")
	}

	for _, r := range results {
		r = r.Rounded()
		record := []string{
			formatFloat(r.X),
			formatFloat(r.Y),
			formatFloat(r.DistanceToClass0),
			formatFloat(r.DistanceToClass1),
			strconv.Itoa(r.PredictedLabel),
		}
		if err := writer.Write(record); err != nil {
			return eris.Wrap(err, "presenter: write result")
		}
	}

	writer.Flush()
	return eris.Wrap(writer.Error(), "presenter: flush results")
}

// WriteCloudsCSV writes cloud 0 followed by cloud 1, tagging every row with
// its label.
func WriteCloudsCSV(w io.Writer, c0, c1 classifier.Cloud) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(cloudsHeader); err != nil {
		return eris.Wrap(err, "presenter: write clouds header")
	}

	for _, c := range []classifier.Cloud{c0, c1} {
		label := strconv.Itoa(c.Label)
		for i := 0; i < c.Len(); i++ {
			p := c.At(i)
			if err := writer.Write([]string{formatFloat(p.X), formatFloat(p.Y), label}); err != nil {
				return eris.Wrap(err, "presenter: write cloud point")
			}
		}
	}

	writer.Flush()
	return eris.Wrap(writer.Error(), "presenter: flush clouds")
}

// WriteHotelsCSV writes the hotel table.
func WriteHotelsCSV(w io.Writer, hs []hotels.Hotel) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(hotelsHeader); err != nil {
		return eris.Wrap(err, "presenter: write hotels header")
	}

	for _, h := range hs {
		record := []string{
			h.Name,
			h.User,
			h.Category,
			strconv.Itoa(h.Views),
			strconv.FormatBool(h.Available),
			strconv.Itoa(h.Rating),
			formatFloat(h.Lat),
			formatFloat(h.Lon),
		}
		if err := writer.Write(record); err != nil {
			return eris.Wrap(err, "presenter: write hotel")
		}
	}

	writer.Flush()
	return eris.Wrap(writer.Error(), "presenter: flush hotels")
}

// SaveToFile creates filename and fills it with write.
func SaveToFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return eris.Wrapf(err, "presenter: create %s", filename)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}
	return eris.Wrapf(file.Sync(), "presenter: sync %s", filename)
}

func SaveResultsCSV(filename string, results []classifier.Result) error {
	return SaveToFile(filename, func(w io.Writer) error {
		return WriteResultsCSV(w, results)
	})
}

func SaveCloudsCSV(filename string, c0, c1 classifier.Cloud) error {
	return SaveToFile(filename, func(w io.Writer) error {
		return WriteCloudsCSV(w, c0, c1)
	})
}

// OutputName builds dir/kind-YYYYMMDD-HHMMSS-<id>.ext so repeated runs never
// overwrite each other.
func OutputName(dir, kind, ext string) string {
	timestamp := time.Now().Format("20060102-150405")
	id := uuid.New().String()[:8]
	return filepath.Join(dir, fmt.Sprintf("%s-%s-%s.%s", kind, timestamp, id, ext))
}
