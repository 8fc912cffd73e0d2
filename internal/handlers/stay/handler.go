package stay

import (
	"net/http"
	"pousada/infras/otel"
	"pousada/internal/domains/stay/model"
	"pousada/internal/domains/stay/model/dto"
	"pousada/internal/domains/stay/service"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stays", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStay)
		routerGroup.Get("/", handler.GetStays)
		routerGroup.Get("/{id}", handler.GetStayByID)
		routerGroup.Patch("/{id}", handler.UpdateStay)
		routerGroup.Delete("/{id}", handler.DeleteStay)
	})
}

// CreateStay records a new reservation.
// @Summary Create a new stay
// @Description Create a stay referencing an existing guest and cabin.
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CreateStayRequest true "Stay payload"
// @Success 201 {object} response.Message "Stay created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays [post]
// @Security BearerAuth
func (handler *Handler) CreateStay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStay")
	defer scope.End()

	var req dto.CreateStayRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create stay")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stay created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Stay created successfully")
}

// GetStays retrieves all stays based on query parameters.
// @Summary Get all stays
// @Description Retrieve all stays ordered by check-in, newest first.
// @Tags Stay
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetStaysResponse] "List of stays"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays [get]
// @Security BearerAuth
func (handler *Handler) GetStays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldCheckIn
		queryParams.SortDir = "DESC"
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	stays, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stays")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stays retrieved successfully")

	response.WithJSON(w, http.StatusOK, stays)
}

// GetStayByID retrieves a stay by its ID.
// @Summary Get a stay by ID
// @Description Retrieve a stay by its unique identifier.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Success 200 {object} response.Data[dto.StayResponse] "Stay details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStayByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStayByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	stay, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stay by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay retrieved successfully")

	response.WithJSON(w, http.StatusOK, stay)
}

// UpdateStay updates an existing stay by its ID.
// @Summary Update a stay by ID
// @Description Update dates, status or occupancy of an existing stay.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param request body dto.UpdateStayRequest true "Fields to update"
// @Success 200 {object} response.Message "Stay updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if id == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("stay id is required"))

		return
	}

	var req dto.UpdateStayRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update stay")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stay updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stay updated successfully")
}

// DeleteStay deletes a stay by its ID.
// @Summary Delete a stay by ID
// @Description Delete a stay using its unique identifier.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Success 200 {object} response.Message "Stay deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stay")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stay deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stay deleted successfully")
}
