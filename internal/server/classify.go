package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"montecarlo-go/internal/classifier"
	"montecarlo-go/internal/presenter"
	"montecarlo-go/pkg/normalboxmueller"
	"montecarlo-go/pkg/readpoints"
)

// classifyRequest mirrors the dashboard sidebar. Omitted fields fall back to
// the configured defaults.
type classifyRequest struct {
	Samples    *int              `json:"samples"`
	StdDev     *float64          `json:"std_dev"`
	Seed       *int64            `json:"seed"`
	Center0    *classifier.Point `json:"center0"`
	Center1    *classifier.Point `json:"center1"`
	PointsText *string           `json:"points_text"`
	Sampler    *string           `json:"sampler"`
}

type classifyResponse struct {
	Params    classifier.Params   `json:"params"`
	Sampler   string              `json:"sampler"`
	Results   []classifier.Result `json:"results"`
	Dropped   int                 `json:"dropped"`
	Centroids [2]classifier.Point `json:"centroids"`
	Boundary  *classifier.Point   `json:"boundary,omitempty"`
}

type cloudRow struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Clase int     `json:"clase"`
}

type run struct {
	params  classifier.Params
	sampler string
	c0, c1  classifier.Cloud
	results []classifier.Result
	dropped int
}

func (s *Server) runFromRequest(c *gin.Context) (*run, error) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, eris.Wrap(err, "invalid request body")
	}

	sim := s.cfg.Simulation
	params := sim.Params()
	if req.Samples != nil {
		params.Samples = *req.Samples
	}
	if req.StdDev != nil {
		params.StdDev = *req.StdDev
	}
	if req.Seed != nil {
		params.Seed = *req.Seed
	}
	if req.Center0 != nil {
		params.Center0 = *req.Center0
	}
	if req.Center1 != nil {
		params.Center1 = *req.Center1
	}
	text := sim.Points
	if req.PointsText != nil {
		text = *req.PointsText
	}
	kind := sim.Sampler
	if req.Sampler != nil {
		kind = *req.Sampler
	}

	if err := sim.CheckSamples(params.Samples); err != nil {
		return nil, err
	}
	sampler, err := normalboxmueller.NewDistribution(kind)
	if err != nil {
		return nil, err
	}

	lines := readpoints.ParseLines(text)
	queries := readpoints.Valid(lines)
	dropped := len(lines) - len(queries)
	if dropped > 0 {
		s.log.Debug("dropped malformed query lines", zap.Int("dropped", dropped))
	}

	c0, c1, results, err := classifier.Run(params, sampler, queries)
	if err != nil {
		return nil, err
	}

	return &run{
		params:  params,
		sampler: sampler.Name(),
		c0:      c0,
		c1:      c1,
		results: results,
		dropped: dropped,
	}, nil
}

func (s *Server) handleClassify(c *gin.Context) {
	r, err := s.runFromRequest(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	display := make([]classifier.Result, len(r.results))
	for i, res := range r.results {
		display[i] = res.Rounded()
	}

	resp := classifyResponse{
		Params:    r.params,
		Sampler:   r.sampler,
		Results:   display,
		Dropped:   r.dropped,
		Centroids: [2]classifier.Point{classifier.Centroid(r.c0), classifier.Centroid(r.c1)},
	}
	if b, err := classifier.BoundaryPoint(r.c0, r.c1); err == nil {
		resp.Boundary = &b
	} else {
		s.log.Debug("no boundary point", zap.Error(err))
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleClassifyCSV(c *gin.Context) {
	r, err := s.runFromRequest(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var buf bytes.Buffer
	if err := presenter.WriteResultsCSV(&buf, r.results); err != nil {
		s.log.Error("csv export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+presenter.ResultsFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) handleClouds(c *gin.Context) {
	r, err := s.runFromRequest(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	rows := make([]cloudRow, 0, r.c0.Len()+r.c1.Len())
	for _, cloud := range []classifier.Cloud{r.c0, r.c1} {
		for i := 0; i < cloud.Len(); i++ {
			p := cloud.At(i)
			rows = append(rows, cloudRow{X: p.X, Y: p.Y, Clase: cloud.Label})
		}
	}
	c.JSON(http.StatusOK, rows)
}
