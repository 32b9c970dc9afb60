package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakform/peakformcom/internal/telemetry/tracing"
	"github.com/peakform/peakformcom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type profilesRepo interface {
	Upsert(ctx context.Context, snapshot Snapshot) error
	Get(ctx context.Context, clientID string) (*Snapshot, error)
	ListClients(ctx context.Context) ([]Snapshot, error)
}

type ClientsListResponse struct {
	Clients []Snapshot `json:"clients"`
	Total   int        `json:"total"`
}

type Handler struct {
	repo profilesRepo
}

func NewHandler(repo profilesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	clientID := mux.Vars(r)["clientID"]
	if clientID == "" {
		http.Error(w, "error, client id empty", http.StatusBadRequest)
		return
	}

	snapshot, err := handler.repo.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile %s: %s", clientID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to marshal profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshotJson, http.StatusOK)
}

// HandleUpdate takes the dashboard's string-typed numeric fields, parses
// them here at the boundary, and stores the resulting snapshot.
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
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

	var updateReq UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	snapshot, err := updateReq.ToSnapshot(clientID)
	if err != nil {
		log.Errorf("update profile %s, invalid numeric field: %s", clientID, err)
		http.Error(w, "error, invalid numeric field", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(ctx, *snapshot); err != nil {
		log.Errorf("failed to update profile %s: %s", clientID, err)
		http.Error(w, "error, failed to update profile", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile updated: [%s]", clientID)

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal updated profile: %s", err)
		http.Error(w, "failed to marshal updated profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshotJson, http.StatusOK)
}

func (handler *Handler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.listclients")
	defer span.End()

	clients, err := handler.repo.ListClients(ctx)
	if err != nil {
		log.Errorf("list clients error: %s", err)
		http.Error(w, "failed to get clients", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ClientsListResponse{
		Clients: clients,
		Total:   len(clients),
	})
	if err != nil {
		log.Errorf("marshal clients error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}
