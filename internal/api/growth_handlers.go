package api

import (
	"net/http"

	"github.com/todoscontam/finlab/internal/growth"
)

// planRequest is the shared body of the growth endpoints. Rates are decimal
// fractions. When annual_rate is omitted and asset is set, the asset's
// typical return is used.
type planRequest struct {
	InitialCapital  float64  `json:"initial_capital"`
	Contribution    float64  `json:"contribution"`
	AnnualRate      *float64 `json:"annual_rate"`
	AnnualInflation float64  `json:"annual_inflation"`
	Frequency       string   `json:"frequency"`
	Years           float64  `json:"years"`
	Asset           string   `json:"asset"`
}

func (req planRequest) params() (growth.Params, error) {
	ppy, err := frequency(req.Frequency)
	if err != nil {
		return growth.Params{}, err
	}
	rate, err := annualRate(req.AnnualRate, req.Asset)
	if err != nil {
		return growth.Params{}, err
	}
	return growth.Params{
		InitialCapital:       req.InitialCapital,
		PeriodicContribution: req.Contribution,
		AnnualRate:           rate,
		AnnualInflation:      req.AnnualInflation,
		PeriodsPerYear:       ppy,
		HorizonYears:         req.Years,
	}, nil
}

func frequency(name string) (int, error) {
	if name == "" {
		return growth.Monthly, nil
	}
	return growth.ParseFrequency(name)
}

func annualRate(rate *float64, asset string) (float64, error) {
	if rate != nil {
		return *rate, nil
	}
	if asset == "" {
		return 0, nil
	}
	a, err := growth.LookupAsset(asset)
	if err != nil {
		return 0, err
	}
	return a.AnnualReturn, nil
}

type pointResponse struct {
	Period  int     `json:"period"`
	Nominal float64 `json:"nominal"`
	Real    float64 `json:"real"`
}

func toPoint(pt growth.Point) pointResponse {
	return pointResponse{Period: pt.Period, Nominal: pt.Nominal, Real: pt.Real}
}

type yearResponse struct {
	Year          int     `json:"year"`
	Interest      float64 `json:"interest"`
	Contributions float64 `json:"contributions"`
	EndBalance    float64 `json:"end_balance"`
}

type simulateResponse struct {
	AnnualRate     float64         `json:"annual_rate"`
	PeriodsPerYear int             `json:"periods_per_year"`
	Final          pointResponse   `json:"final"`
	Contributed    float64         `json:"contributed"`
	Interest       float64         `json:"interest"`
	ByYear         []yearResponse  `json:"by_year"`
	Series         []pointResponse `json:"series,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		planRequest
		IncludeSeries bool `json:"include_series"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	p, err := req.params()
	if err != nil {
		handleError(w, r, err)
		return
	}
	series, err := growth.Simulate(p)
	if err != nil {
		handleError(w, r, err)
		return
	}

	final := series.Last()
	contributed := p.InitialCapital + p.PeriodicContribution*float64(series.Len())
	resp := simulateResponse{
		AnnualRate:     p.AnnualRate,
		PeriodsPerYear: p.PeriodsPerYear,
		Final:          toPoint(final),
		Contributed:    contributed,
		Interest:       final.Nominal - contributed,
	}
	for _, y := range growth.InterestByYear(p, series) {
		resp.ByYear = append(resp.ByYear, yearResponse(y))
	}
	if req.IncludeSeries {
		for _, pt := range series {
			resp.Series = append(resp.Series, toPoint(pt))
		}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleContribution(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target     float64  `json:"target"`
		Years      float64  `json:"years"`
		AnnualRate *float64 `json:"annual_rate"`
		Asset      string   `json:"asset"`
		Frequency  string   `json:"frequency"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	ppy, err := frequency(req.Frequency)
	if err != nil {
		handleError(w, r, err)
		return
	}
	rate, err := annualRate(req.AnnualRate, req.Asset)
	if err != nil {
		handleError(w, r, err)
		return
	}
	c, err := growth.RequiredContribution(req.Target, req.Years, rate, ppy)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"contribution":     c,
		"periods":          growth.Params{PeriodsPerYear: ppy, HorizonYears: req.Years}.TotalPeriods(),
		"periods_per_year": ppy,
		"annual_rate":      rate,
	})
}

func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InitialCapital float64  `json:"initial_capital"`
		Target         float64  `json:"target"`
		Contribution   float64  `json:"contribution"`
		AnnualRate     *float64 `json:"annual_rate"`
		Asset          string   `json:"asset"`
		Frequency      string   `json:"frequency"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	ppy, err := frequency(req.Frequency)
	if err != nil {
		handleError(w, r, err)
		return
	}
	rate, err := annualRate(req.AnnualRate, req.Asset)
	if err != nil {
		handleError(w, r, err)
		return
	}
	n, err := growth.PeriodsToTargetFrom(req.InitialCapital, req.Target, req.Contribution, rate, ppy)
	if err != nil {
		handleError(w, r, err)
		return
	}
	years, rest := growth.SplitPeriods(n, ppy)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"periods":          n,
		"years":            years,
		"remaining":        rest,
		"periods_per_year": ppy,
	})
}

func (s *Server) handleInflation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount          float64 `json:"amount"`
		Years           float64 `json:"years"`
		AnnualInflation float64 `json:"annual_inflation"`
		Frequency       string  `json:"frequency"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	ppy, err := frequency(req.Frequency)
	if err != nil {
		handleError(w, r, err)
		return
	}
	contribution, future, err := growth.InflationAdjustedContribution(req.Amount, req.Years, req.AnnualInflation, ppy)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"future_cost":  future,
		"contribution": contribution,
		"increase":     future - req.Amount,
	})
}

type comparisonResponse struct {
	Baseline   pointResponse `json:"baseline"`
	Scenario   pointResponse `json:"scenario"`
	Difference float64       `json:"difference"`
}

func toComparison(c growth.Comparison) comparisonResponse {
	return comparisonResponse{
		Baseline:   toPoint(c.Baseline),
		Scenario:   toPoint(c.Scenario),
		Difference: c.Difference(),
	}
}

func (s *Server) handleCompareEarlier(w http.ResponseWriter, r *http.Request) {
	var req struct {
		planRequest
		ExtraYears float64 `json:"extra_years"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	p, err := req.params()
	if err != nil {
		handleError(w, r, err)
		return
	}
	c, err := growth.StartEarlier(p, req.ExtraYears)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toComparison(c))
}

func (s *Server) handleCompareInvest(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	p, err := req.params()
	if err != nil {
		handleError(w, r, err)
		return
	}
	c, err := growth.KeepVersusInvest(p)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toComparison(c))
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, growth.Assets())
}
