package programs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/peakform/peakformcom/internal/telemetry/tracing"
	"github.com/peakform/peakformcom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type templatesRepo interface {
	Add(ctx context.Context, template Template) (*Template, error)
	Get(ctx context.Context, id int) (*Template, error)
	ListAll(ctx context.Context, kind string) ([]Template, error)
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, id int) error
}

type DeleteTemplateResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateTemplateResponse struct {
	UpdatedID int `json:"updatedId"`
}

type TemplatesListResponse struct {
	Templates []Template `json:"templates"`
	Total     int        `json:"total"`
}

type Handler struct {
	repo templatesRepo
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("new program template, unmarshal json params: %s", err)
		http.Error(w, "add program template failed", http.StatusBadRequest)
		return
	}

	if !template.Kind.IsValid() {
		http.Error(w, "error, invalid template kind", http.StatusBadRequest)
		return
	}
	if template.Title == "" {
		http.Error(w, "error, template title empty", http.StatusBadRequest)
		return
	}

	addedTemplate, err := handler.repo.Add(ctx, template)
	if err != nil {
		log.Errorf("failed to add new program template [%s] [%s]: %s", template.Kind, template.Title, err)
		http.Error(w, "error, failed to add new program template", http.StatusInternalServerError)
		return
	}

	log.Debugf("new program template added: [%s] [%s]: %d", addedTemplate.Kind, addedTemplate.Title, addedTemplate.ID)

	addedJson, err := json.Marshal(addedTemplate)
	if err != nil {
		log.Errorf("failed to marshal new program template: %s", err)
		http.Error(w, "error, failed to add new program template", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	template, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "program template not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get program template %d: %s", id, err)
		http.Error(w, "failed to get program template", http.StatusInternalServerError)
		return
	}

	templateJson, err := json.Marshal(template)
	if err != nil {
		log.Errorf("failed to marshal program template: %s", err)
		http.Error(w, "failed to marshal program template", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templateJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	kind := r.URL.Query().Get("kind")
	if kind != "" && !Kind(kind).IsValid() {
		http.Error(w, "error, invalid template kind", http.StatusBadRequest)
		return
	}

	templates, err := handler.repo.ListAll(ctx, kind)
	if err != nil {
		log.Errorf("list program templates error: %s", err)
		http.Error(w, "failed to get program templates", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(TemplatesListResponse{
		Templates: templates,
		Total:     len(templates),
	})
	if err != nil {
		log.Errorf("marshal program templates error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("update program template, unmarshal json params: %s", err)
		http.Error(w, "update program template failed", http.StatusBadRequest)
		return
	}

	if !template.Kind.IsValid() {
		http.Error(w, "error, invalid template kind", http.StatusBadRequest)
		return
	}
	if template.Title == "" {
		http.Error(w, "error, template title empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &template); err != nil {
		log.Errorf("failed to update program template [%d]: %s", template.ID, err)
		http.Error(w, "error, failed to update program template", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateTemplateResponse{
		UpdatedID: template.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("program template updated: [%s] [%s]: %d", template.Kind, template.Title, template.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.delete")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete program template %d: %s", id, err)
		http.Error(w, "program template not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteTemplateResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
