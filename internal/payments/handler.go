package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/peakform/peakformcom/internal/telemetry/tracing"
	"github.com/peakform/peakformcom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=payments_test

type paymentsRepo interface {
	GetPaytrSettings(ctx context.Context) (*PaytrSettings, error)
	SavePaytrSettings(ctx context.Context, settings PaytrSettings) error
	AddBankAccount(ctx context.Context, account BankAccount) (*BankAccount, error)
	ListBankAccounts(ctx context.Context, onlyActive bool) ([]BankAccount, error)
	DeleteBankAccount(ctx context.Context, id int) error
}

type DeleteBankAccountResponse struct {
	DeletedID int `json:"deletedId"`
}

type BankAccountsListResponse struct {
	Accounts []BankAccount `json:"accounts"`
	Total    int           `json:"total"`
}

type Handler struct {
	repo paymentsRepo
}

func NewHandler(repo paymentsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGetPaytrSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.getpaytr")
	defer span.End()

	settings, err := handler.repo.GetPaytrSettings(ctx)
	if err != nil {
		log.Errorf("failed to get paytr settings: %s", err)
		http.Error(w, "failed to get paytr settings", http.StatusInternalServerError)
		return
	}

	settingsJson, err := json.Marshal(settings)
	if err != nil {
		log.Errorf("failed to marshal paytr settings: %s", err)
		http.Error(w, "failed to marshal paytr settings", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, settingsJson, http.StatusOK)
}

func (handler *Handler) HandleSavePaytrSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.savepaytr")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var settings PaytrSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Errorf("save paytr settings, unmarshal json params: %s", err)
		http.Error(w, "save paytr settings failed", http.StatusBadRequest)
		return
	}

	// a live gateway needs complete credentials
	if settings.Enabled && (settings.MerchantID == "" || settings.MerchantKey == "" || settings.MerchantSalt == "") {
		http.Error(w, "error, incomplete merchant credentials", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SavePaytrSettings(ctx, settings); err != nil {
		log.Errorf("failed to save paytr settings: %s", err)
		http.Error(w, "error, failed to save paytr settings", http.StatusInternalServerError)
		return
	}

	log.Debugf("paytr settings saved, enabled: %t, test mode: %t", settings.Enabled, settings.TestMode)
	pkg.WriteJSONResponseOK(w, `{"saved":true}`)
}

func (handler *Handler) HandleAddBankAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.addbankaccount")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var account BankAccount
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Errorf("new bank account, unmarshal json params: %s", err)
		http.Error(w, "add bank account failed", http.StatusBadRequest)
		return
	}

	if account.BankName == "" || account.IBAN == "" {
		http.Error(w, "error, bank name or iban empty", http.StatusBadRequest)
		return
	}
	if account.Currency == "" {
		account.Currency = "TRY"
	}

	addedAccount, err := handler.repo.AddBankAccount(ctx, account)
	if err != nil {
		log.Errorf("failed to add bank account [%s]: %s", account.BankName, err)
		http.Error(w, "error, failed to add bank account", http.StatusInternalServerError)
		return
	}

	log.Debugf("new bank account added: [%s]: %d", addedAccount.BankName, addedAccount.ID)

	addedJson, err := json.Marshal(addedAccount)
	if err != nil {
		log.Errorf("failed to marshal new bank account: %s", err)
		http.Error(w, "error, failed to add bank account", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleListBankAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.listbankaccounts")
	defer span.End()

	onlyActive := r.URL.Query().Get("active") == "true"

	accounts, err := handler.repo.ListBankAccounts(ctx, onlyActive)
	if err != nil {
		log.Errorf("list bank accounts error: %s", err)
		http.Error(w, "failed to get bank accounts", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(BankAccountsListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
	if err != nil {
		log.Errorf("marshal bank accounts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.deletebankaccount")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteBankAccount(ctx, id); err != nil {
		log.Errorf("failed to delete bank account %d: %s", id, err)
		http.Error(w, "bank account not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteBankAccountResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
