package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/peakform/peakformcom/internal/telemetry/metrics"
	"github.com/peakform/peakformcom/internal/telemetry/tracing"
	"github.com/peakform/peakformcom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

type overviewAnalyzer interface {
	Overview(ctx context.Context, clientID string) (*Overview, error)
	InvalidateOverview(clientID string)
}

type DeleteMeasurementResponse struct {
	DeletedID string `json:"deletedId"`
}

type MeasurementsListResponse struct {
	Measurements []Measurement `json:"measurements"`
	Total        int           `json:"total"`
}

type Handler struct {
	repo     measurementsRepo
	analyzer overviewAnalyzer
	metrics  *metrics.Manager
}

func NewHandler(repo measurementsRepo, analyzer overviewAnalyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
		metrics:  metricsManager,
	}
}

// HandleAdd accepts a raw measurement payload, normalizes it, and stores
// the result. Anything that does not normalize to a valid record is a 400.
func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	clientID := mux.Vars(r)["clientID"]
	if clientID == "" {
		http.Error(w, "error, client id empty", http.StatusBadRequest)
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Errorf("new measurement, unmarshal json params: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	measurement := Normalize(raw)
	if measurement == nil {
		http.Error(w, "error, invalid measurement", http.StatusBadRequest)
		return
	}
	measurement.ClientID = clientID

	addedMeasurement, err := handler.repo.Add(ctx, *measurement)
	if err != nil {
		if errors.Is(err, ErrMeasurementExists) {
			http.Error(w, "measurement already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new measurement [%s], [%s]: %s", clientID, measurement.Type, err)
		http.Error(w, "error, failed to add new measurement", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMeasurementsAdded.Inc()
	handler.analyzer.InvalidateOverview(clientID)

	log.Debugf("new measurement added: [%s] [%s]: %s", clientID, addedMeasurement.Type, addedMeasurement.ID)

	addedJson, err := json.Marshal(addedMeasurement)
	if err != nil {
		log.Errorf("failed to marshal new measurement: %s", err)
		http.Error(w, "error, failed to add new measurement", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	m, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get measurement %s: %s", id, err)
		http.Error(w, "measurement not found", http.StatusBadRequest)
		return
	}

	mJson, err := json.Marshal(m)
	if err != nil {
		log.Errorf("failed to marshal measurement: %s", err)
		http.Error(w, "failed to marshal measurement", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["clientID"]
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete measurement %s: %s", id, err)
		http.Error(w, "measurement not deleted", http.StatusInternalServerError)
		return
	}

	handler.analyzer.InvalidateOverview(clientID)

	deleteRespJson, err := json.Marshal(DeleteMeasurementResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	vars := mux.Vars(r)

	clientID := vars["clientID"]
	if clientID == "" {
		http.Error(w, "error, client id empty", http.StatusBadRequest)
		return
	}

	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Errorf("handle get measurements page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Errorf("handle get measurements page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	listParams := ListParams{
		MeasurementParams: MeasurementParams{
			ClientID: clientID,
			Type:     r.URL.Query().Get("type"),
		},
		Page: page,
		Size: size,
	}

	log.Tracef(
		"list measurements - page %s size %s, client [%s], type [%s]",
		pageStr, sizeStr, clientID, listParams.Type,
	)

	measurements, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list measurements error: %s", err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(MeasurementsListResponse{
		Measurements: measurements,
		Total:        total,
	})
	if err != nil {
		log.Errorf("marshal measurements error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.overview")
	defer span.End()

	clientID := mux.Vars(r)["clientID"]
	if clientID == "" {
		http.Error(w, "error, client id empty", http.StatusBadRequest)
		return
	}

	overview, err := handler.analyzer.Overview(ctx, clientID)
	if err != nil {
		log.Errorf("failed to get overview for %s: %s", clientID, err)
		http.Error(w, "failed to get overview", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("failed to marshal overview: %s", err)
		http.Error(w, "failed to marshal overview", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewJson, http.StatusOK)
}
