package fakeapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/guregu/null/v6"

	"persondesk/internal/platform/middleware"
	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
	"persondesk/pkg/platform/sentinel"
)

// Handler serves the backend endpoints over a Store.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

func New(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register registers the backend routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Logger(h.logger))
	api.Use(middleware.Recover(h.logger))

	api.Route("/personaldetails", func(r chi.Router) {
		r.Get("/", h.handleListPersons)
		r.Post("/", h.handleCreatePerson)
		r.Put("/soft_delete/{id}", h.handleSoftDeletePerson)
		r.Put("/{id}", h.handleUpdatePerson)
		r.Get("/{id}/combined", h.handleCombined)
	})
	api.Route("/relatedofficials", func(r chi.Router) {
		r.Post("/", h.handleCreateOfficial)
		r.Put("/soft_delete/{id}", h.handleSoftDeleteOfficial)
		r.Put("/{id}", h.handleUpdateOfficial)
	})
	api.Route("/bankdetails", func(r chi.Router) {
		r.Get("/", h.handleListBankDetails)
		r.Post("/", h.handleCreateBankDetail)
		r.Get("/{id}", h.handleGetBankDetail)
		r.Put("/soft_delete/{id}", h.handleSoftDeleteBankDetail)
		r.Put("/{id}", h.handleUpdateBankDetail)
	})

	r.Mount("/", api)
}

// NewRouter returns a router with every backend route registered.
func NewRouter(store *Store, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	New(store, logger).Register(r)
	return r
}

type personBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type officialBody struct {
	PersonID id.PersonID `json:"personal_details_id"`
	Name     string      `json:"related_official_name"`
	IDNumber string      `json:"related_official_nic_number"`
}

type bankDetailBody struct {
	PersonID          id.PersonID `json:"personal_details_id"`
	AccountDetails    string      `json:"account_details"`
	Loans             null.Float  `json:"loans"`
	LeasingFacilities null.Float  `json:"leasing_facilities"`
}

func (b personBody) validate() error {
	var missing []string
	if strings.TrimSpace(b.FirstName) == "" {
		missing = append(missing, "first_name: field required")
	}
	if strings.TrimSpace(b.LastName) == "" {
		missing = append(missing, "last_name: field required")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, "; "), sentinel.ErrInvalidInput)
	}
	return nil
}

func (b officialBody) validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("related_official_name: field required: %w", sentinel.ErrInvalidInput)
	}
	return nil
}

func (b bankDetailBody) validate() error {
	if b.Loans.Valid && b.Loans.Float64 < 0 {
		return fmt.Errorf("loans: must not be negative: %w", sentinel.ErrInvalidInput)
	}
	if b.LeasingFacilities.Valid && b.LeasingFacilities.Float64 < 0 {
		return fmt.Errorf("leasing_facilities: must not be negative: %w", sentinel.ErrInvalidInput)
	}
	return nil
}

func (b bankDetailBody) input() models.BankDetailInput {
	return models.BankDetailInput{
		AccountDetails:    b.AccountDetails,
		Loans:             b.Loans,
		LeasingFacilities: b.LeasingFacilities,
	}
}

func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.ListPersons())
}

// handleCreatePerson answers with the name fields only; clients must re-list
// to learn the new id.
func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var body personBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.store.CreatePerson(models.Person{FirstName: body.FirstName, LastName: body.LastName})
	h.writeJSON(w, r, http.StatusOK, body)
}

func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	var body personBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.store.UpdatePerson(personID, models.Person{FirstName: body.FirstName, LastName: body.LastName})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, row)
}

func (h *Handler) handleSoftDeletePerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	if err := h.store.SoftDeletePerson(personID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMessage(w, r, "Personal details soft deleted successfully")
}

func (h *Handler) handleCombined(w http.ResponseWriter, r *http.Request) {
	personID, ok := h.personID(w, r)
	if !ok {
		return
	}
	c, err := h.store.Combined(personID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, c)
}

func (h *Handler) handleCreateOfficial(w http.ResponseWriter, r *http.Request) {
	var body officialBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.store.CreateOfficial(body.PersonID, models.OfficialInput{Name: body.Name, IDNumber: body.IDNumber})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, row)
}

func (h *Handler) handleUpdateOfficial(w http.ResponseWriter, r *http.Request) {
	officialID, err := id.ParseOfficialID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body officialBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.store.UpdateOfficial(officialID, models.OfficialInput{Name: body.Name, IDNumber: body.IDNumber})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, row)
}

func (h *Handler) handleSoftDeleteOfficial(w http.ResponseWriter, r *http.Request) {
	officialID, err := id.ParseOfficialID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.store.SoftDeleteOfficial(officialID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMessage(w, r, "Related official soft deleted successfully")
}

func (h *Handler) handleListBankDetails(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.ListBankDetails())
}

func (h *Handler) handleGetBankDetail(w http.ResponseWriter, r *http.Request) {
	bankDetailID, err := id.ParseBankDetailID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.store.GetBankDetail(bankDetailID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, row)
}

func (h *Handler) handleCreateBankDetail(w http.ResponseWriter, r *http.Request) {
	var body bankDetailBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.store.CreateBankDetail(body.PersonID, body.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, row)
}

func (h *Handler) handleUpdateBankDetail(w http.ResponseWriter, r *http.Request) {
	bankDetailID, err := id.ParseBankDetailID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body bankDetailBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.store.UpdateBankDetail(bankDetailID, body.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, row)
}

func (h *Handler) handleSoftDeleteBankDetail(w http.ResponseWriter, r *http.Request) {
	bankDetailID, err := id.ParseBankDetailID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.store.SoftDeleteBankDetail(bankDetailID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMessage(w, r, "Bank details soft deleted successfully")
}

func (h *Handler) personID(w http.ResponseWriter, r *http.Request) (id.PersonID, bool) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return 0, false
	}
	return personID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		writeText(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	return true
}

// writeError answers with a plain-text detail, the way the real backend does.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		status, detail = http.StatusNotFound, trimSentinel(err, sentinel.ErrNotFound)
	case errors.Is(err, sentinel.ErrInvalidInput):
		status, detail = http.StatusUnprocessableEntity, trimSentinel(err, sentinel.ErrInvalidInput)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
	}
	writeText(w, status, detail)
}

func writeText(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, detail)
}

func trimSentinel(err, s error) string {
	return strings.TrimSuffix(err.Error(), ": "+s.Error())
}

func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"message": msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode response",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
	}
}
