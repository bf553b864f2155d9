package httpinterface

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/application"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
	"github.com/oraclefeed-network/oraclefeed-daemon/pkg/pips"
)

type priceResponse struct {
	Symbol string `json:"symbol"`
	Pips   uint64 `json:"pips"`
	Price  string `json:"price"`
}

type registryEntryResponse struct {
	Symbol string `json:"symbol"`
	FeedID string `json:"feedId"`
}

type addEntryRequest struct {
	Symbol string `json:"symbol"`
	FeedID string `json:"feedId"`
}

type activateRequest struct {
	Consumer string `json:"consumer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *service) loadPriceHandler(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	priceRequestsTotal.Inc()
	price, err := s.adapterSvc.LoadPrice(r.Context(), symbol)
	if err != nil {
		priceErrorsTotal.Inc()
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{
		Symbol: symbol,
		Pips:   price,
		Price:  formatPips(price),
	})
}

func (s *service) addEntryHandler(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{"invalid request body"})
		return
	}

	caller := r.Header.Get(adminTokenHeader)
	if err := s.adapterSvc.AddSymbolAndFeedID(
		r.Context(), caller, req.Symbol, req.FeedID,
	); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registryEntryResponse(req))
}

func (s *service) listRegistryHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := s.adapterSvc.ListEntries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]registryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, registryEntryResponse{
			Symbol: entry.Symbol,
			FeedID: entry.FeedID,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *service) resolveSymbolHandler(
	w http.ResponseWriter, r *http.Request,
) {
	symbol := chi.URLParam(r, "symbol")

	feedID, err := s.adapterSvc.GetFeedID(r.Context(), symbol)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registryEntryResponse{
		Symbol: symbol,
		FeedID: feedID,
	})
}

func (s *service) resolveFeedIDHandler(
	w http.ResponseWriter, r *http.Request,
) {
	feedID := chi.URLParam(r, "feedID")

	symbol, err := s.adapterSvc.GetSymbol(r.Context(), feedID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registryEntryResponse{
		Symbol: symbol,
		FeedID: feedID,
	})
}

func (s *service) activateHandler(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{"invalid request body"})
		return
	}

	s.adapterSvc.SetActive(r.Context(), req.Consumer)
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *service) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []string{s.adapterSvc.SourceName()})
}

// formatPips renders a pip amount as a human-readable decimal price.
func formatPips(price uint64) string {
	return decimal.NewFromBigInt(
		new(big.Int).SetUint64(price), -pips.Exponent,
	).String()
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// nolint: errcheck
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), errorResponse{err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSymbolNotFound),
		errors.Is(err, domain.ErrFeedIDNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateSymbol),
		errors.Is(err, domain.ErrDuplicateFeedID):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrInvalidFeedID),
		errors.Is(err, domain.ErrArgumentLengthMismatch):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ports.ErrStaleOrMissingAnswer),
		errors.Is(err, ports.ErrNoPriceAvailable),
		errors.Is(err, application.ErrZeroPrice),
		errors.Is(err, pips.ErrNonPositiveMagnitude),
		errors.Is(err, pips.ErrOverflow):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
