package cabin

import (
	"net/http"
	"pousada/infras/otel"
	"pousada/internal/domains/cabin/model"
	"pousada/internal/domains/cabin/model/dto"
	"pousada/internal/domains/cabin/service"
	"pousada/shared"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cabin
	otel    otel.Otel
}

func New(service service.Cabin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cabins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCabin)
		routerGroup.Get("/", handler.GetCabins)
		routerGroup.Get("/{id}", handler.GetCabinByID)
		routerGroup.Patch("/{id}", handler.UpdateCabin)
		routerGroup.Delete("/{id}", handler.DeleteCabin)
	})
}

// CreateCabin handles the creation of a new cabin.
// @Summary Create a new cabin
// @Description Create a new cabin with the provided details.
// @Tags Cabin
// @Accept json
// @Produce json
// @Param request body dto.CreateCabinRequest true "Cabin payload"
// @Success 201 {object} response.Message "Cabin created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cabins [post]
// @Security BearerAuth
func (handler *Handler) CreateCabin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCabin")
	defer scope.End()

	var req dto.CreateCabinRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cabin")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cabin created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Cabin created successfully")
}

// GetCabins retrieves all cabins based on query parameters.
// @Summary Get all cabins
// @Description Retrieve all cabins with optional filtering and pagination.
// @Tags Cabin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param is_active query boolean false "Filter by active status"
// @Param is_pet_friendly query boolean false "Filter by pet friendliness"
// @Success 200 {object} response.Data[dto.GetCabinsResponse] "List of cabins"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cabins [get]
// @Security BearerAuth
func (handler *Handler) GetCabins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCabins")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldName
		queryParams.SortDir = "ASC"
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if petFriendly := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsPetFriendly)); petFriendly != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsPetFriendly,
			Operator: gDto.FilterOperatorEq,
			Value:    *petFriendly,
			Table:    model.TableName,
		})
	}

	cabins, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cabins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cabins retrieved successfully")

	response.WithJSON(w, http.StatusOK, cabins)
}

// GetCabinByID retrieves a cabin by its ID.
// @Summary Get a cabin by ID
// @Description Retrieve a cabin by its unique identifier.
// @Tags Cabin
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID"
// @Success 200 {object} response.Data[dto.CabinResponse] "Cabin details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cabins/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCabinByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCabinByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	cabin, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cabin by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cabin retrieved successfully")

	response.WithJSON(w, http.StatusOK, cabin)
}

// UpdateCabin updates an existing cabin by its ID.
// @Summary Update a cabin by ID
// @Description Update the details of an existing cabin.
// @Tags Cabin
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID"
// @Param request body dto.UpdateCabinRequest true "Fields to update"
// @Success 200 {object} response.Message "Cabin updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cabins/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCabin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCabin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if id == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("cabin id is required"))

		return
	}

	var req dto.UpdateCabinRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cabin")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cabin updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Cabin updated successfully")
}

// DeleteCabin deletes a cabin by its ID.
// @Summary Delete a cabin by ID
// @Description Delete a cabin using its unique identifier.
// @Tags Cabin
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID"
// @Success 200 {object} response.Message "Cabin deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cabins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCabin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCabin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete cabin")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cabin deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Cabin deleted successfully")
}
