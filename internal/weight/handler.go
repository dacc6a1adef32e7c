package weight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weight_test

type weightService interface {
	Add(ctx context.Context, entry Entry) (*Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Record, error)
	Summary(ctx context.Context) (*Summary, error)
}

type Handler struct {
	service weightService
}

func NewHandler(service weightService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/weight", h.HandleList).Methods("GET", "OPTIONS").Name("list-weight")
	r.HandleFunc("/weight", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight")
	r.HandleFunc("/weight/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("weight-summary")
	r.HandleFunc("/weight/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.list")
	defer span.End()

	records, err := h.service.List(ctx)
	if err != nil {
		log.Errorf("list weight records: %s", err)
		http.Error(w, "error, failed to get weight records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("failed to marshal weight records: %s", err)
		http.Error(w, "error, failed to get weight records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordsJson)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("add weight, unmarshal json params: %s", err)
		http.Error(w, "error, invalid weight record", http.StatusBadRequest)
		return
	}

	record, err := h.service.Add(ctx, entry)
	if err != nil {
		var invalidInputErr *pkg.InvalidInputError
		if errors.As(err, &invalidInputErr) {
			http.Error(w, invalidInputErr.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add weight record: %s", err)
		http.Error(w, "error, failed to add weight record", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal weight record: %s", err)
		http.Error(w, "error, failed to add weight record", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("delete weight record [%s]: %s", id, err)
		http.Error(w, "error, failed to delete weight record", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.summary")
	defer span.End()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		log.Errorf("weight summary: %s", err)
		http.Error(w, "error, failed to get weight summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal weight summary: %s", err)
		http.Error(w, "error, failed to get weight summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}
