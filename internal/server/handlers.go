package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/services/chart"
	"github.com/bobmcallan/tickerview/internal/services/stock"
)

// symbolParam extracts and normalizes the single path segment after prefix.
// Returns (symbol, errMsg); anything after the symbol segment is rejected.
func symbolParam(r *http.Request, prefix string) (string, string) {
	segment := PathParam(r, prefix, "")
	symbol, err := stock.NormalizeSymbol(segment)
	if strings.TrimPrefix(r.URL.Path, prefix) != segment {
		return symbol, "Invalid path: expected a single symbol segment"
	}
	if err != nil {
		return symbol, invalidSymbolMessage(err)
	}
	return symbol, ""
}

func invalidSymbolMessage(err error) string {
	return "Invalid symbol: " + strings.TrimPrefix(err.Error(), stock.ErrInvalidSymbol.Error()+": ")
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleAnalyze handles GET /api/analyze/{symbol}.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol, errMsg := symbolParam(r, "/api/analyze/")
	if errMsg != "" {
		WriteSymbolError(w, http.StatusBadRequest, errMsg, symbol)
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error().
				Str("panic", fmt.Sprintf("%v", rec)).
				Str("symbol", symbol).
				Msg("Panic recovered during analysis")
			WriteSymbolError(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", rec), symbol)
		}
	}()

	result, err := s.app.StockService.AnalyzeSymbol(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, stock.ErrInvalidSymbol) {
			WriteSymbolError(w, http.StatusBadRequest, invalidSymbolMessage(err), symbol)
			return
		}
		if errors.Is(err, stock.ErrNoData) {
			WriteSymbolError(w, http.StatusBadRequest, "Unable to fetch stock data. Please check the symbol and try again.", symbol)
			return
		}
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("Analysis failed")
		WriteSymbolError(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err), symbol)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// handleChart handles GET /api/chart/{symbol}, returning a PNG of a fresh series.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol, errMsg := symbolParam(r, "/api/chart/")
	if errMsg != "" {
		WriteSymbolError(w, http.StatusBadRequest, errMsg, symbol)
		return
	}

	img, err := chart.RenderCloseChart(symbol, s.app.SeriesGenerator.Generate(symbol))
	if err != nil {
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("Chart render failed")
		WriteSymbolError(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err), symbol)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}
