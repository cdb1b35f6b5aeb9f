package api

import (
	"net/http"
	"strconv"

	"github.com/sos-evolution/soul-math/internal/metrics"
	"github.com/sos-evolution/soul-math/internal/pkg/httputil"
	"github.com/sos-evolution/soul-math/internal/pkg/logger"
	"github.com/sos-evolution/soul-math/internal/soulmath"
)

// Handlers contains the soul-math HTTP handlers
type Handlers struct {
	metrics     *metrics.Metrics
	defaultLang string
}

// NewHandlers creates handlers that label signs in defaultLang unless the
// request asks for another language.
func NewHandlers(m *metrics.Metrics, defaultLang string) *Handlers {
	return &Handlers{metrics: m, defaultLang: defaultLang}
}

// ZodiacResponse is returned by GET /api/v1/zodiac.
type ZodiacResponse struct {
	Day   int           `json:"day"`
	Month int           `json:"month"`
	Sign  soulmath.Sign `json:"sign"`
	Label string        `json:"label"`
}

// LifePathResponse is returned by GET /api/v1/life-path.
type LifePathResponse struct {
	Date     string                  `json:"date"`
	LifePath soulmath.LifePathNumber `json:"life_path"`
	Master   bool                    `json:"master"`
}

// ProfileRequest is the body of POST /api/v1/profile.
type ProfileRequest struct {
	BirthDate string `json:"birth_date"`
	Lang      string `json:"lang,omitempty"`
}

// ProfileResponse is returned by POST /api/v1/profile.
type ProfileResponse struct {
	BirthDate string                  `json:"birth_date"`
	Sign      soulmath.Sign           `json:"sign"`
	Label     string                  `json:"label"`
	LifePath  soulmath.LifePathNumber `json:"life_path"`
	Master    bool                    `json:"master"`
}

func (h *Handlers) lang(requested string) string {
	if requested != "" {
		return requested
	}
	return h.defaultLang
}

// GetZodiac resolves the sign for a day and month.
//
//	GET /api/v1/zodiac?day=21&month=3&lang=es
func (h *Handlers) GetZodiac(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day, err := strconv.Atoi(q.Get("day"))
	if err != nil {
		httputil.BadRequest(w, "day must be an integer")
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		httputil.BadRequest(w, "month must be an integer")
		return
	}

	sign, err := soulmath.ZodiacSign(day, month)
	if err != nil {
		h.metrics.RecordCalculation("zodiac", metrics.OutcomeInvalid)
		httputil.Unprocessable(w, httputil.CodeInvalidInput, err.Error())
		return
	}
	h.metrics.RecordCalculation("zodiac", metrics.OutcomeOK)

	httputil.OK(w, ZodiacResponse{
		Day:   day,
		Month: month,
		Sign:  sign,
		Label: sign.Localized(h.lang(q.Get("lang"))),
	})
}

// GetLifePath computes the life path number for a date.
//
//	GET /api/v1/life-path?date=1990-05-15
func (h *Handlers) GetLifePath(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		httputil.BadRequest(w, "date is required")
		return
	}

	n, err := soulmath.LifePath(date)
	if err != nil {
		h.metrics.RecordCalculation("life_path", metrics.OutcomeInvalid)
		logger.Debug("life path rejected", "date", date, "error", err)
		httputil.Unprocessable(w, httputil.CodeInvalidDate, "date must be an ISO-8601 calendar date")
		return
	}
	h.metrics.RecordCalculation("life_path", metrics.OutcomeOK)

	httputil.OK(w, LifePathResponse{Date: date, LifePath: n, Master: n.IsMaster()})
}

// PostProfile derives the sign and life path for a birth date in one call.
//
//	POST /api/v1/profile {"birth_date":"1990-05-15","lang":"es"}
func (h *Handlers) PostProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.BirthDate == "" {
		httputil.BadRequest(w, "birth_date is required")
		return
	}

	p, err := soulmath.NewProfile(req.BirthDate)
	if err != nil {
		h.metrics.RecordCalculation("profile", metrics.OutcomeInvalid)
		logger.Debug("profile rejected", "birth_date", req.BirthDate, "error", err)
		httputil.Unprocessable(w, httputil.CodeInvalidDate, "birth_date must be an ISO-8601 calendar date")
		return
	}
	h.metrics.RecordCalculation("profile", metrics.OutcomeOK)
	logger.Info("profile computed", "birth_date", req.BirthDate, "sign", p.Sign, "life_path", p.LifePath)

	httputil.OK(w, ProfileResponse{
		BirthDate: p.BirthDate.String(),
		Sign:      p.Sign,
		Label:     p.Sign.Localized(h.lang(req.Lang)),
		LifePath:  p.LifePath,
		Master:    p.LifePath.IsMaster(),
	})
}
