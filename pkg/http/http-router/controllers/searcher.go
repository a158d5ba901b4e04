package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ruhan116/CLIR/pkg/datastructure"
	helper "github.com/Ruhan116/CLIR/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type searchAPI struct {
	searchService SearchService
	log           *zap.Logger
}

func New(searchService SearchService, log *zap.Logger) *searchAPI {
	return &searchAPI{
		searchService: searchService,
		log:           log,
	}

}

func (api *searchAPI) Routes(group *helper.RouteGroup) {
	group.POST("/search", api.search)
	group.POST("/search/method", api.searchMethod)
	group.POST("/compare", api.compareMethods)
	group.POST("/translit", api.addTransliteration)
	group.GET("/translit/:token", api.expandToken)
	group.GET("/doc/:id", api.getDocument)
}

// searchRequest model info
//
//	@Description	request body for hybrid cross-lingual search.
type searchRequest struct {
	Query   string             `json:"query" validate:"required"`               // query entered by the user, Bangla or English.
	TopK    int                `json:"top_k" validate:"required,min=1,max=100"` // the number of results to return.
	Offset  int                `json:"offset" validate:"min=0"`                 // the number of top results to skip, for pagination.
	Weights map[string]float64 `json:"weights"`                                 // optional per-method fusion weights, defaults used when empty.
}

// searchResponse model info
//
//	@Description	response body for ranked search results.
type searchResponse struct {
	Data []datastructure.SearchResult `json:"data"` // articles relevant to the query, best first.
}

// search godoc
// @Summary		hybrid search fusing BM25, edit-distance, and jaccard scores into one ranking.
// @Description	hybrid search fusing BM25, edit-distance, and jaccard scores into one ranking. Weights are optional and rescaled to sum to 1.
// @Tags			search
// @ID search
// @Param			body	body	searchRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request searchRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	// fetch offset extra results and slice, so page N+1 continues where page
	// N ended.
	results, err := api.searchService.Search(request.Query, request.Weights, request.TopK+request.Offset)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	if request.Offset >= len(results) {
		results = []datastructure.SearchResult{}
	} else {
		results = results[request.Offset:]
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type searchMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=bm25 edit jaccard translit"` // which single scoring method to run.
	Query  string `json:"query" validate:"required"`
	TopK   int    `json:"top_k" validate:"required,min=1,max=100"`
}

// searchMethod godoc
// @Summary		run one scoring method on its own, with its native score scale.
// @Description	run one scoring method on its own, with its native score scale.
// @Tags			search
// @ID search-method
// @Param			body	body	searchMethodRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search/method [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) searchMethod(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request searchMethodRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	results, err := api.searchService.SearchMethod(request.Method, request.Query, request.TopK)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type compareRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"required,min=1,max=100"`
}

// compareMethods godoc
// @Summary		run every scoring method side by side for one query.
// @Description	run every scoring method side by side for one query, each ranking under its own score scale.
// @Tags			search
// @ID compare-methods
// @Param			body	body	compareRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/compare [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) compareMethods(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request compareRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	comparison, err := api.searchService.CompareMethods(request.Query, request.TopK)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": comparison}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type translitRequest struct {
	Canonical string   `json:"canonical" validate:"required"`       // canonical entity spelling, usually Bangla script.
	Variants  []string `json:"variants" validate:"required,min=1"`  // romanized spellings of the same entity.
}

// addTransliteration godoc
// @Summary		register an entity spelling group in the transliteration map at runtime.
// @Description	register an entity spelling group in the transliteration map at runtime.
// @Tags			translit
// @ID add-transliteration
// @Param			body	body	translitRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/translit [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
func (api *searchAPI) addTransliteration(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request translitRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	api.searchService.AddTransliteration(request.Canonical, request.Variants)

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": "ok", "expansion": api.searchService.ExpandToken(request.Canonical)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// expandToken godoc
// @Summary		report the transliteration expansion of one token.
// @Description	report the transliteration expansion of one token.
// @Tags			translit
// @ID expand-token
// @Produce		application/json
// @Router			/api/translit/{token} [get]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
func (api *searchAPI) expandToken(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	token := strings.TrimSpace(params.ByName("token"))
	if token == "" {
		api.BadRequestResponse(w, r, fmt.Errorf("token must not be empty"))
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": api.searchService.ExpandToken(token)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getDocument godoc
// @Summary		fetch one stored article by its docID.
// @Description	fetch one stored article by its docID.
// @Tags			search
// @ID get-document
// @Produce		application/json
// @Router			/api/doc/{id} [get]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
func (api *searchAPI) getDocument(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("docID must be an integer"))
		return
	}

	doc, err := api.searchService.GetDocument(id)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": doc}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *searchAPI) validateRequest(request interface{}) error {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
