package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/euvat/euvat/internal/application"
	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
)

type handler struct {
	logger     *slog.Logger
	calculator *application.CalculatorService
	metrics    *Metrics
	validate   *validator.Validate
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) allRates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, vat.GetAll())
}

func (h *handler) standardRates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, vat.GetAllStandardRates())
}

func (h *handler) countryRates(w http.ResponseWriter, r *http.Request) {
	country, err := vat.GetCountryRates(chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, country)
}

func (h *handler) addTax(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, domain.OperationAdd, h.calculator.Add)
}

func (h *handler) subtractTax(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, domain.OperationSubtract, h.calculator.Subtract)
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request, op domain.Operation, run func(domain.CalculationRequest) (domain.Calculation, error)) {
	req, err := h.decode(r)
	if err != nil {
		h.metrics.observeError(op, err)
		respondError(w, err)
		return
	}

	calc, err := run(req)
	if err != nil {
		h.metrics.observeError(op, err)
		if h.logger != nil {
			h.logger.Warn("calculation rejected", slog.String("operation", string(op)), slog.Any("error", err))
		}
		respondError(w, err)
		return
	}

	h.metrics.observeCalculation(calc)
	writeJSON(w, http.StatusOK, calc)
}

func (h *handler) decode(r *http.Request) (domain.CalculationRequest, error) {
	var req domain.CalculationRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: decoding body: %v", errValidation, err)
	}
	// match the CLI and MCP paths, which accept padded codes
	req.Country = strings.TrimSpace(req.Country)
	req.Category = strings.TrimSpace(req.Category)
	if err := h.validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %v", errValidation, err)
	}
	return req, nil
}
