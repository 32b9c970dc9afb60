package recipes

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=recipes_test

type recipesRepo interface {
	Add(ctx context.Context, recipe Recipe) (*Recipe, error)
	Get(ctx context.Context, id int) (*Recipe, error)
	List(ctx context.Context, params ListParams) (_ []Recipe, total int, err error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id int) error
}

type DeleteRecipeResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateRecipeResponse struct {
	UpdatedID int `json:"updatedId"`
}

type RecipesListResponse struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
}

type Handler struct {
	repo recipesRepo
}

func NewHandler(repo recipesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var recipe Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Errorf("new recipe, unmarshal json params: %s", err)
		http.Error(w, "add recipe failed", http.StatusBadRequest)
		return
	}

	if recipe.Title == "" || recipe.Content == "" {
		http.Error(w, "error, recipe title or content empty", http.StatusBadRequest)
		return
	}

	addedRecipe, err := handler.repo.Add(ctx, recipe)
	if err != nil {
		log.Errorf("failed to add new recipe [%s]: %s", recipe.Title, err)
		http.Error(w, "error, failed to add new recipe", http.StatusInternalServerError)
		return
	}

	log.Debugf("new recipe added: [%s]: %d", addedRecipe.Title, addedRecipe.ID)

	addedJson, err := json.Marshal(addedRecipe)
	if err != nil {
		log.Errorf("failed to marshal new recipe: %s", err)
		http.Error(w, "error, failed to add new recipe", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.get")
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

	recipe, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			http.Error(w, "recipe not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get recipe %d: %s", id, err)
		http.Error(w, "failed to get recipe", http.StatusInternalServerError)
		return
	}

	recipeJson, err := json.Marshal(recipe)
	if err != nil {
		log.Errorf("failed to marshal recipe: %s", err)
		http.Error(w, "failed to marshal recipe", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recipeJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.list")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Errorf("handle get recipes page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Errorf("handle get recipes page, from <size> param: %s", err)
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

	recipesList, total, err := handler.repo.List(ctx, ListParams{
		Tag:  r.URL.Query().Get("tag"),
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list recipes error: %s", err)
		http.Error(w, "failed to get recipes", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(RecipesListResponse{
		Recipes: recipesList,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal recipes error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var recipe Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Errorf("update recipe, unmarshal json params: %s", err)
		http.Error(w, "update recipe failed", http.StatusBadRequest)
		return
	}

	if recipe.Title == "" || recipe.Content == "" {
		http.Error(w, "error, recipe title or content empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &recipe); err != nil {
		log.Errorf("failed to update recipe [%d]: %s", recipe.ID, err)
		http.Error(w, "error, failed to update recipe", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateRecipeResponse{
		UpdatedID: recipe.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("recipe updated: [%s]: %d", recipe.Title, recipe.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.delete")
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
		log.Errorf("failed to delete recipe %d: %s", id, err)
		http.Error(w, "recipe not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteRecipeResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
