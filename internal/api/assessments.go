package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SkillSync/aiq/internal/aiq"
	"github.com/SkillSync/aiq/internal/cache"
	"github.com/SkillSync/aiq/internal/hermes"
	"github.com/SkillSync/aiq/internal/store"
)

type AssessmentsHandler struct {
	engine    *aiq.Engine
	store     store.Store
	cache     cache.AssessmentCache
	hermes    hermes.Client
	metrics   *Metrics
	listLimit int
	logger    *slog.Logger
}

func NewAssessmentsHandler(e *aiq.Engine, s store.Store, c cache.AssessmentCache, h hermes.Client, m *Metrics, listLimit int, logger *slog.Logger) *AssessmentsHandler {
	return &AssessmentsHandler{
		engine:    e,
		store:     s,
		cache:     c,
		hermes:    h,
		metrics:   m,
		listLimit: listLimit,
		logger:    logger,
	}
}

type createAssessmentRequest struct {
	Answers []int  `json:"answers"`
	UserID  string `json:"user_id,omitempty"`
}

type assessmentResponse struct {
	*store.Assessment
	TypeInfo aiq.TypeInfo    `json:"type_info"`
	Dominant []aiq.Dimension `json:"dominant"`
}

func newAssessmentResponse(a *store.Assessment) assessmentResponse {
	info, _ := aiq.LookupTypeInfo(a.Type)
	return assessmentResponse{
		Assessment: a,
		TypeInfo:   info,
		Dominant:   a.Capabilities.Dominant(2),
	}
}

func (h *AssessmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		req.UserID = r.Header.Get(UserIDHeader)
	}

	if err := checkAnswerValues(req.Answers); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.engine.Score(req.Answers)
	if err != nil {
		writeScoreError(w, err)
		return
	}

	a := store.NewAssessment(req.UserID, req.Answers, res)
	if err := h.store.CreateAssessment(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.metrics.ObserveAssessment(a.Type, a.Confidence)
	h.cacheAssessment(r, a)
	h.publishCompleted(a)

	writeJSON(w, http.StatusCreated, newAssessmentResponse(a))
}

func (h *AssessmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	if h.cache != nil {
		a, err := h.cache.Get(r.Context(), id)
		if err != nil {
			h.logger.Warn("assessment cache read failed", "assessment_id", id, "error", err)
		} else if a != nil {
			writeJSON(w, http.StatusOK, newAssessmentResponse(a))
			return
		}
	}

	a, err := h.store.GetAssessment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	h.cacheAssessment(r, a)
	writeJSON(w, http.StatusOK, newAssessmentResponse(a))
}

func (h *AssessmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AssessmentFilter{UserID: q.Get("user_id")}

	if s := q.Get("aiq_type"); s != "" {
		t, err := aiq.ParseType(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid aiq_type")
			return
		}
		filter.Type = &t
	}

	var err error
	if filter.Limit, err = queryInt(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if filter.Offset, err = queryInt(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}
	if filter.Limit == 0 || filter.Limit > h.listLimit {
		filter.Limit = h.listLimit
	}

	assessments, err := h.store.ListAssessments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]assessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, newAssessmentResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AssessmentsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetTypeStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AssessmentsHandler) cacheAssessment(r *http.Request, a *store.Assessment) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(r.Context(), a); err != nil {
		h.logger.Warn("assessment cache write failed", "assessment_id", a.ID, "error", err)
	}
}

func (h *AssessmentsHandler) publishCompleted(a *store.Assessment) {
	if h.hermes == nil {
		return
	}
	scores := a.Capabilities.Scores()
	capabilities := make(map[string]int, len(scores))
	for d, v := range scores {
		capabilities[string(d)] = v
	}
	ev := hermes.AssessmentCompletedEvent{
		AssessmentID:    a.ID.String(),
		UserID:          a.UserID,
		AIQType:         string(a.Type),
		ConfidenceLevel: a.Confidence,
		Capabilities:    capabilities,
		CompletedAt:     a.CompletedAt,
	}
	if err := h.hermes.Publish(hermes.SubjectAssessmentCompleted(ev.AssessmentID), ev); err != nil {
		h.logger.Warn("failed to publish assessment event", "assessment_id", a.ID, "error", err)
	}
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
