package application

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
)

// ErrCountryRequired is returned when a request names no country and no
// default_country is configured.
var ErrCountryRequired = errors.New("country code is required (pass one or set default_country)")

// CalculatorService applies configured defaults to a calculation request,
// runs it through the vat calculator and records it in the history.
type CalculatorService struct {
	cfg     domain.Config
	history domain.CalculationHistory
	logger  *slog.Logger
	now     func() time.Time
}

// NewCalculatorService creates a CalculatorService. history may be nil, in
// which case nothing is recorded.
func NewCalculatorService(cfg domain.Config, history domain.CalculationHistory) *CalculatorService {
	if !cfg.History.Enabled {
		history = nil
	}
	return &CalculatorService{cfg: cfg, history: history, now: time.Now}
}

// WithLogger makes failed history writes visible as warnings on logger.
func (s *CalculatorService) WithLogger(logger *slog.Logger) *CalculatorService {
	s.logger = logger
	return s
}

// Add computes the gross amount for a net amount.
func (s *CalculatorService) Add(req domain.CalculationRequest) (domain.Calculation, error) {
	country, category, err := s.resolve(req)
	if err != nil {
		return domain.Calculation{}, err
	}

	res, err := vat.AddTaxCategory(req.Amount, country, category)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("adding tax: %w", err)
	}

	calc := domain.FromTaxResult(country, category, req.Amount, res)
	s.record(calc)
	return calc, nil
}

// Subtract computes the net amount for a gross amount.
func (s *CalculatorService) Subtract(req domain.CalculationRequest) (domain.Calculation, error) {
	country, category, err := s.resolve(req)
	if err != nil {
		return domain.Calculation{}, err
	}

	res, err := vat.SubtractTaxCategory(req.Amount, country, category)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("subtracting tax: %w", err)
	}

	calc := domain.FromNetResult(country, category, req.Amount, res)
	s.record(calc)
	return calc, nil
}

// History returns recorded calculations, newest last. limit <= 0 returns all.
func (s *CalculatorService) History(limit int) ([]domain.CalculationEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	entries, err := s.history.Load()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// ClearHistory removes every recorded calculation.
func (s *CalculatorService) ClearHistory() error {
	if s.history == nil {
		return nil
	}
	if err := s.history.Clear(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (s *CalculatorService) resolve(req domain.CalculationRequest) (string, vat.RateCategory, error) {
	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country == "" {
		country = strings.ToUpper(s.cfg.DefaultCountry)
	}
	if country == "" {
		return "", "", ErrCountryRequired
	}

	category := s.cfg.Category()
	if strings.TrimSpace(req.Category) != "" {
		category = vat.ParseRateCategory(req.Category)
	}
	return country, category, nil
}

func (s *CalculatorService) record(calc domain.Calculation) {
	if s.history == nil {
		return
	}
	entry := domain.CalculationEntry{
		ID:          uuid.NewString(),
		Timestamp:   s.now().UTC(),
		Calculation: calc,
	}
	// best-effort: a broken history never fails the calculation
	if err := s.history.Save(entry); err != nil && s.logger != nil {
		s.logger.Warn("recording calculation failed",
			slog.String("id", entry.ID),
			slog.String("operation", string(calc.Operation)),
			slog.Any("error", err),
		)
	}
}
