package calories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=calories_test

type calculationService interface {
	Calculate(ctx context.Context, input BiometricInput, now time.Time) (*Calculation, error)
	History(ctx context.Context) ([]Calculation, error)
	ClearHistory(ctx context.Context) error
}

type Handler struct {
	service calculationService
	// injectable for tests
	now func() time.Time
}

func NewHandler(service calculationService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calories.calculate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var input BiometricInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Tracef("calculate, unmarshal json params: %s", err)
		http.Error(w, "error, invalid biometric input", http.StatusBadRequest)
		return
	}

	calculation, err := h.service.Calculate(ctx, input, h.now())
	if err != nil {
		var invalidInputErr *pkg.InvalidInputError
		if errors.As(err, &invalidInputErr) {
			http.Error(w, invalidInputErr.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("calculate: %s", err)
		http.Error(w, "error, failed to calculate", http.StatusInternalServerError)
		return
	}

	calcJson, err := json.Marshal(calculation)
	if err != nil {
		log.Errorf("failed to marshal calculation: %s", err)
		http.Error(w, "error, failed to calculate", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, calcJson, http.StatusCreated)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calories.history")
	defer span.End()

	history, err := h.service.History(ctx)
	if err != nil {
		log.Errorf("get calculations history: %s", err)
		http.Error(w, "error, failed to get history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal calculations history: %s", err)
		http.Error(w, "error, failed to get history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (h *Handler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calories.clearHistory")
	defer span.End()

	if err := h.service.ClearHistory(ctx); err != nil {
		log.Errorf("clear calculations history: %s", err)
		http.Error(w, "error, failed to clear history", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "cleared")
}
