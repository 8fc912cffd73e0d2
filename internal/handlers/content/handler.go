package content

import (
	"net/http"
	"pousada/infras/otel"
	"pousada/internal/domains/content/model"
	"pousada/internal/domains/content/model/dto"
	"pousada/internal/domains/content/service"
	"pousada/shared"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/validator"
	"pousada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContent)
		routerGroup.Get("/", handler.GetContents)
		routerGroup.Get("/{id}", handler.GetContentByID)
		routerGroup.Patch("/{id}", handler.UpdateContent)
		routerGroup.Delete("/{id}", handler.DeleteContent)
	})
}

// CreateContent handles the creation of a new content entry.
// @Summary Create a new content entry
// @Description Create a new content entry. Event content requires event details.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CreateContentRequest true "Content payload"
// @Success 201 {object} response.Message "Content created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content [post]
// @Security BearerAuth
func (handler *Handler) CreateContent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContent")
	defer scope.End()

	var req dto.CreateContentRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create content")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Content created successfully")
}

// GetContents retrieves all content entries based on query parameters.
// @Summary Get all content entries
// @Description Retrieve all content entries with optional filtering and pagination.
// @Tags Content
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param type query string false "Filter by type"
// @Param category query string false "Filter by category"
// @Param is_published query boolean false "Filter by published status"
// @Success 200 {object} response.Data[dto.GetContentsResponse] "List of content entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content [get]
// @Security BearerAuth
func (handler *Handler) GetContents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldTitle
		queryParams.SortDir = "ASC"
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if title := r.URL.Query().Get(model.FieldTitle); title != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	if contentType := r.URL.Query().Get(model.FieldType); contentType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    contentType,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorLike,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	contents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contents retrieved successfully")

	response.WithJSON(w, http.StatusOK, contents)
}

// GetContentByID retrieves a content entry by its ID.
// @Summary Get a content entry by ID
// @Description Retrieve a content entry by its unique identifier.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Data[dto.ContentResponse] "Content details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	content, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Content retrieved successfully")

	response.WithJSON(w, http.StatusOK, content)
}

// UpdateContent updates an existing content entry by its ID.
// @Summary Update a content entry by ID
// @Description Update the details of an existing content entry. The content type cannot change.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param request body dto.UpdateContentRequest true "Fields to update"
// @Success 200 {object} response.Message "Content updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateContentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content updated successfully")
}

// DeleteContent deletes a content entry by its ID.
// @Summary Delete a content entry by ID
// @Description Delete a content entry using its unique identifier.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Message "Content deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content deleted successfully")
}
