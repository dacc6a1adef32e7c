package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	ListWorkouts(ctx context.Context) ([]Workout, error)
	GetWorkout(ctx context.Context, id string) (*Workout, error)
	CreateWorkout(ctx context.Context, draft Draft) (*Workout, error)
	UpdateWorkout(ctx context.Context, id string, draft Draft) (*Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	ListScheduled(ctx context.Context, day *time.Time) ([]ScheduledWorkout, error)
	Schedule(ctx context.Context, workoutID string, date time.Time) (*ScheduledWorkout, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*ScheduledWorkout, error)
	ToggleCompleted(ctx context.Context, id string) (*ScheduledWorkout, error)
	Unschedule(ctx context.Context, id string) error
	Stats(ctx context.Context, now time.Time) (*Stats, error)
}

const dayQueryLayout = "2006-01-02"

type ScheduleRequest struct {
	Date time.Time `json:"date"`
}

type CompletedRequest struct {
	Completed bool `json:"completed"`
}

type ScheduleListResponse struct {
	Scheduled []ScheduledWorkout `json:"scheduled"`
	// set only when listing a single day
	AllCompleted *bool `json:"allCompleted,omitempty"`
}

type DeletedResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service  workoutsService
	location *time.Location
	now      func() time.Time
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service:  service,
		location: time.Local,
		now:      time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/schedule", h.HandleSchedule).Methods("POST", "OPTIONS").Name("schedule-workout")

	r.HandleFunc("/schedule", h.HandleListScheduled).Methods("GET", "OPTIONS").Name("list-scheduled")
	r.HandleFunc("/schedule/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("schedule-stats")
	r.HandleFunc("/schedule/{id}/completed", h.HandleSetCompleted).Methods("PUT", "OPTIONS").Name("set-completed")
	r.HandleFunc("/schedule/{id}/toggle", h.HandleToggleCompleted).Methods("POST", "OPTIONS").Name("toggle-completed")
	r.HandleFunc("/schedule/{id}", h.HandleUnschedule).Methods("DELETE", "OPTIONS").Name("unschedule")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	ws, err := h.service.ListWorkouts(ctx)
	if err != nil {
		h.writeError(w, "list workouts", err)
		return
	}
	h.writeJSON(w, ws, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := h.service.GetWorkout(ctx, id)
	if err != nil {
		h.writeError(w, "get workout", err)
		return
	}
	h.writeJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	workout, err := h.service.CreateWorkout(ctx, draft)
	if err != nil {
		h.writeError(w, "create workout", err)
		return
	}
	h.writeJSON(w, workout, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	workout, err := h.service.UpdateWorkout(ctx, id, draft)
	if err != nil {
		h.writeError(w, "update workout", err)
		return
	}
	h.writeJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteWorkout(ctx, id); err != nil {
		h.writeError(w, "delete workout", err)
		return
	}
	h.writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.schedule")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("schedule workout, unmarshal json params: %s", err)
		http.Error(w, "error, invalid schedule date", http.StatusBadRequest)
		return
	}

	scheduled, err := h.service.Schedule(ctx, id, req.Date)
	if err != nil {
		h.writeError(w, "schedule workout", err)
		return
	}
	h.writeJSON(w, scheduled, http.StatusCreated)
}

func (h *Handler) HandleListScheduled(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.list")
	defer span.End()

	var day *time.Time
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.ParseInLocation(dayQueryLayout, dateParam, h.location)
		if err != nil {
			http.Error(w, "error, date must be in YYYY-MM-DD format", http.StatusBadRequest)
			return
		}
		day = &parsed
	}

	scheduled, err := h.service.ListScheduled(ctx, day)
	if err != nil {
		h.writeError(w, "list scheduled workouts", err)
		return
	}

	resp := ScheduleListResponse{Scheduled: scheduled}
	if day != nil {
		allCompleted := AllCompletedOn(scheduled, *day)
		resp.AllCompleted = &allCompleted
	}
	h.writeJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleSetCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.setCompleted")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req CompletedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set completed, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	scheduled, err := h.service.SetCompleted(ctx, id, req.Completed)
	if err != nil {
		h.writeError(w, "set completed", err)
		return
	}
	h.writeJSON(w, scheduled, http.StatusOK)
}

func (h *Handler) HandleToggleCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.toggleCompleted")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	scheduled, err := h.service.ToggleCompleted(ctx, id)
	if err != nil {
		h.writeError(w, "toggle completed", err)
		return
	}
	h.writeJSON(w, scheduled, http.StatusOK)
}

func (h *Handler) HandleUnschedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.remove")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.Unschedule(ctx, id); err != nil {
		h.writeError(w, "unschedule", err)
		return
	}
	h.writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.stats")
	defer span.End()

	stats, err := h.service.Stats(ctx, h.now().In(h.location))
	if err != nil {
		h.writeError(w, "schedule stats", err)
		return
	}
	h.writeJSON(w, stats, http.StatusOK)
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (Draft, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Draft{}, false
	}

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Tracef("workout draft, unmarshal json params: %s", err)
		http.Error(w, "error, invalid workout", http.StatusBadRequest)
		return Draft{}, false
	}
	return draft, true
}

func (h *Handler) writeError(w http.ResponseWriter, action string, err error) {
	var invalidInputErr *pkg.InvalidInputError
	switch {
	case errors.As(err, &invalidInputErr):
		http.Error(w, invalidInputErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutNotFound), errors.Is(err, ErrScheduledNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, "error, "+action+" failed", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
