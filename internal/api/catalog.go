package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SkillSync/aiq/internal/aiq"
)

// CatalogHandler serves the questionnaire, reference metadata and the
// stateless score preview.
type CatalogHandler struct {
	engine *aiq.Engine
}

func NewCatalogHandler(e *aiq.Engine) *CatalogHandler {
	return &CatalogHandler{engine: e}
}

type questionsResponse struct {
	Questions     []aiq.Question     `json:"questions"`
	AnswerOptions []aiq.AnswerOption `json:"answer_options"`
}

func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, questionsResponse{
		Questions:     h.engine.Questionnaire().Questions(),
		AnswerOptions: aiq.AnswerOptions(),
	})
}

func (h *CatalogHandler) Dimensions(w http.ResponseWriter, r *http.Request) {
	dims := aiq.Dimensions()
	out := make([]aiq.DimensionInfo, 0, len(dims))
	for _, d := range dims {
		info, _ := aiq.LookupDimensionInfo(d)
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) Types(w http.ResponseWriter, r *http.Request) {
	types := aiq.Types()
	out := make([]aiq.TypeInfo, 0, len(types))
	for _, t := range types {
		info, _ := aiq.LookupTypeInfo(t)
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) Type(w http.ResponseWriter, r *http.Request) {
	t, err := aiq.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown aiq type")
		return
	}
	info, _ := aiq.LookupTypeInfo(t)
	writeJSON(w, http.StatusOK, info)
}

type scoreRequest struct {
	Answers []int `json:"answers"`
}

type scoreResponse struct {
	aiq.Result
	TypeInfo aiq.TypeInfo    `json:"type_info"`
	Dominant []aiq.Dimension `json:"dominant"`
}

func newScoreResponse(res aiq.Result) scoreResponse {
	info, _ := aiq.LookupTypeInfo(res.Type)
	return scoreResponse{
		Result:   res,
		TypeInfo: info,
		Dominant: res.Capabilities.Dominant(2),
	}
}

// Score previews a result without persisting it.
func (h *CatalogHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
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
	writeJSON(w, http.StatusOK, newScoreResponse(res))
}

// checkAnswerValues rejects values the assessment store cannot hold. Values
// inside that range but outside the answer scale are still scored as skipped.
func checkAnswerValues(answers []int) error {
	for i, a := range answers {
		if a < math.MinInt32 || a > math.MaxInt32 {
			return fmt.Errorf("answer %d out of range: %d", i+1, a)
		}
	}
	return nil
}

func writeScoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, aiq.ErrAnswerCount) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
