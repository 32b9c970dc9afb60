package questions

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=questions_test

type questionsRepo interface {
	Add(ctx context.Context, question Question) (*Question, error)
	Answer(ctx context.Context, id int, answer string) error
	Get(ctx context.Context, id int) (*Question, error)
	ListAll(ctx context.Context, params ListParams) ([]Question, error)
	Delete(ctx context.Context, id int) error
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	AnsweredID int `json:"answeredId"`
}

type DeleteQuestionResponse struct {
	DeletedID int `json:"deletedId"`
}

type QuestionsListResponse struct {
	Questions []Question `json:"questions"`
	Total     int        `json:"total"`
}

type Handler struct {
	repo    questionsRepo
	metrics *metrics.Manager
}

func NewHandler(repo questionsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.questions.ask")
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

	var question Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		log.Errorf("new question, unmarshal json params: %s", err)
		http.Error(w, "ask question failed", http.StatusBadRequest)
		return
	}

	if question.Body == "" {
		http.Error(w, "error, question body empty", http.StatusBadRequest)
		return
	}
	question.ClientID = clientID

	addedQuestion, err := handler.repo.Add(ctx, question)
	if err != nil {
		log.Errorf("failed to add new question [%s]: %s", clientID, err)
		http.Error(w, "error, failed to ask question", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterQuestionsAsked.Inc()

	log.Debugf("new question added: [%s]: %d", clientID, addedQuestion.ID)

	addedJson, err := json.Marshal(addedQuestion)
	if err != nil {
		log.Errorf("failed to marshal new question: %s", err)
		http.Error(w, "error, failed to ask question", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.questions.answer")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var answerReq AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&answerReq); err != nil {
		log.Errorf("answer question, unmarshal json params: %s", err)
		http.Error(w, "answer question failed", http.StatusBadRequest)
		return
	}

	if answerReq.Answer == "" {
		http.Error(w, "error, answer empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Answer(ctx, id, answerReq.Answer); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to answer question %d: %s", id, err)
		http.Error(w, "error, failed to answer question", http.StatusInternalServerError)
		return
	}

	answerRespJson, err := json.Marshal(AnswerResponse{
		AnsweredID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal answer response: %s", err)
		http.Error(w, "failed to marshal answer response", http.StatusInternalServerError)
		return
	}

	log.Debugf("question answered: %d", id)
	pkg.WriteJSONResponseOK(w, string(answerRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.questions.list")
	defer span.End()

	params := ListParams{
		ClientID:       r.URL.Query().Get("client_id"),
		OnlyUnanswered: r.URL.Query().Get("unanswered") == "true",
	}

	questions, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list questions error: %s", err)
		http.Error(w, "failed to get questions", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(QuestionsListResponse{
		Questions: questions,
		Total:     len(questions),
	})
	if err != nil {
		log.Errorf("marshal questions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.questions.delete")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete question %d: %s", id, err)
		http.Error(w, "question not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteQuestionResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
