package api

import (
	"net/http"

	"github.com/todoscontam/finlab/internal/basics"
)

func (s *Server) handleBarter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemPrice float64 `json:"item_price"`
		GoodPrice float64 `json:"good_price"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	ratio, err := basics.BarterRatio(req.ItemPrice, req.GoodPrice)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"units": ratio})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Initial float64 `json:"initial"`
		Monthly float64 `json:"monthly"`
		Months  int     `json:"months"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	total, err := basics.LinearSavings(req.Initial, req.Monthly, req.Months)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"total": total})
}

func (s *Server) handleComparePrices(w http.ResponseWriter, r *http.Request) {
	var req struct {
		First  basics.Product `json:"first"`
		Second basics.Product `json:"second"`
	}
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	c, err := basics.ComparePrices(req.First, req.Second)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, c)
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	var req basics.ValueCheck
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	verdict, advice, err := req.Advice()
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"verdict": verdict,
		"advice":  advice,
	})
}
