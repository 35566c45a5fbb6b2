package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"

	"montecarlo-go/internal/hotels"
)

type hotelQuery struct {
	count      int
	seed       int64
	users      []string
	categories []string
	window     int
	smooth     string
}

// selection reads a comma-separated list from the query. A missing key selects
// all; a present but empty key selects nothing.
func selection(c *gin.Context, key string, all []string) []string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return all
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *Server) parseHotelQuery(c *gin.Context) (hotelQuery, error) {
	q := hotelQuery{
		count:      s.cfg.Hotels.Count,
		seed:       s.cfg.Hotels.Seed,
		users:      selection(c, "users", hotels.Users),
		categories: selection(c, "categories", hotels.Categories),
		window:     1,
	}

	if raw := c.Query("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, eris.Errorf("invalid n parameter %q", raw)
		}
		if err := s.cfg.Hotels.CheckCount(n); err != nil {
			return q, eris.Wrap(err, "invalid n parameter")
		}
		q.count = n
	}
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, eris.Errorf("invalid seed parameter %q", raw)
		}
		q.seed = seed
	}
	if raw := c.Query("rolling"); raw != "" {
		rolling, err := strconv.ParseBool(raw)
		if err != nil {
			return q, eris.Errorf("invalid rolling parameter %q", raw)
		}
		if rolling {
			q.window = s.cfg.Hotels.RollingWindow
		}
	}
	q.smooth = c.Query("smooth")
	if err := hotels.CheckSmoothing(q.smooth); err != nil {
		return q, eris.Wrap(err, "invalid smooth parameter")
	}
	return q, nil
}

func (s *Server) filteredHotels(c *gin.Context) ([]hotels.Hotel, hotelQuery, bool) {
	q, err := s.parseHotelQuery(c)
	if err != nil {
		badRequest(c, err)
		return nil, q, false
	}
	hs, err := hotels.Generate(q.count, q.seed)
	if err != nil {
		badRequest(c, err)
		return nil, q, false
	}
	return hotels.Filter(hs, q.users, q.categories), q, true
}

func (s *Server) handleHotels(c *gin.Context) {
	hs, _, ok := s.filteredHotels(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, hs)
}

func (s *Server) handleHotelViews(c *gin.Context) {
	hs, q, ok := s.filteredHotels(c)
	if !ok {
		return
	}
	series, err := hotels.SmoothedViewSeries(hs, q.users, q.window, q.smooth)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totals": hotels.ViewsByUser(hs),
		"series": series,
	})
}

func (s *Server) handleHotelGeoJSON(c *gin.Context) {
	hs, _, ok := s.filteredHotels(c)
	if !ok {
		return
	}
	data, err := hotels.GeoJSON(hs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}
