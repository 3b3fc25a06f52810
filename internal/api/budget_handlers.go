package api

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/todoscontam/finlab/internal/budget"
	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/diversify"
)

func (s *Server) handleBudgetSplit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Income float64      `json:"income"`
		Rule   *budget.Rule `json:"rule"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	rule := budget.DefaultRule
	if req.Rule != nil {
		rule = *req.Rule
	}
	alloc, err := budget.Split(req.Income, rule)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"allocation": alloc,
		"warnings":   rule.Warnings(),
		"advice":     alloc.Health.Advice(),
	})
}

func (s *Server) handleBudgetBreakdown(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Needs   float64 `json:"needs"`
		Wants   float64 `json:"wants"`
		Savings float64 `json:"savings"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	rule, err := budget.Breakdown(req.Needs, req.Wants, req.Savings)
	if err != nil {
		handleError(w, r, err)
		return
	}
	health := budget.SavingsHealth(rule.Savings)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"rule":     rule,
		"warnings": rule.Warnings(),
		"health":   health,
		"advice":   health.Advice(),
	})
}

func (s *Server) handleBudgetReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Income   float64            `json:"income"`
		Expenses map[string]float64 `json:"expenses"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	review, err := budget.Assess(req.Income, req.Expenses)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, review)
}

func (s *Server) handleBudgetRate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Income   float64 `json:"income"`
		Spending float64 `json:"spending"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Income < 0 || req.Spending < 0 {
		handleError(w, r, NewValidationError("income", "income and spending must be non-negative"))
		return
	}
	amount, pct := budget.SavingsRate(req.Income, req.Spending)
	health := budget.SavingsHealth(pct)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"saved":   amount,
		"percent": pct,
		"health":  health,
		"advice":  health.Advice(),
	})
}

func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	out := make([]currency.Amount, 0, len(currency.Codes()))
	for _, code := range currency.Codes() {
		rate, err := currency.Rate(code)
		if err != nil {
			handleError(w, r, err)
			return
		}
		out = append(out, currency.Amount{Code: code, Value: rate})
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"base": currency.Base, "rates": out})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
		From   string          `json:"from"`
		To     string          `json:"to"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.From == "" {
		req.From = currency.Base
	}
	if req.Amount.IsNegative() {
		handleError(w, r, NewValidationError("amount", "must be non-negative"))
		return
	}

	if req.To == "" {
		eq, err := currency.Equivalents(req.Amount, req.From)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, map[string]any{"from": req.From, "equivalents": eq})
		return
	}
	v, err := currency.Convert(req.Amount, req.From, req.To)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"from":      req.From,
		"to":        req.To,
		"amount":    currency.Round(v, req.To),
		"formatted": currency.FormatDecimal(v, req.To),
	})
}

func (s *Server) handleDiversify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Config *diversify.Config `json:"config"`
		Seed   string            `json:"seed"`
		Choice string            `json:"choice"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	requested, err := parseSeed(req.Seed)
	if err != nil {
		handleError(w, r, err)
		return
	}
	cfg := diversify.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	seed := s.seed(requested)
	res, err := diversify.Simulate(cfg, seed)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := map[string]any{
		"seed":     strconv.FormatUint(seed, 10),
		"choices":  res.Choices(),
		"outcomes": res.Outcomes(),
	}
	if req.Choice != "" {
		o, err := res.Outcome(req.Choice)
		if err != nil {
			handleError(w, r, err)
			return
		}
		resp["picked"] = o
	}
	writeJSON(w, r, http.StatusOK, resp)
}
