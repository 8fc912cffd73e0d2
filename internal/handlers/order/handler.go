package order

import (
	"net/http"
	"pousada/infras/otel"
	"pousada/internal/domains/order/model/dto"
	"pousada/internal/domains/order/service"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the order endpoints directly on the version group. The
// stay-nested paths overlap the /stays subtree and must not mount their
// own subrouter there.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/stays/{id}/orders", handler.CreateOrder)
	router.Get("/stays/{id}/orders", handler.GetOrdersByStay)
	router.Delete("/orders/{id}", handler.DeleteOrder)
	router.Get("/breakfast/orders", handler.GetTodayBreakfastOrders)
	router.Get("/breakfast/diners", handler.GetExpectedDiners)
}

// CreateOrder records an order against a stay.
// @Summary Create an order for a stay
// @Description Create an order for a catalog item during the given stay.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param request body dto.CreateOrderRequest true "Order payload"
// @Success 201 {object} response.Message "Order created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id}/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	stayID := chi.URLParam(request, constant.RequestParamID)
	if stayID == constant.Empty {
		response.WithError(writer, failure.BadRequestFromString("stay id is required"))

		return
	}

	var req dto.CreateOrderRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req, stayID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Order created successfully")
}

// GetOrdersByStay lists the orders of one stay.
// @Summary Get the orders of a stay
// @Description Retrieve the orders placed during the given stay.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetOrdersResponse] "List of orders"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id}/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrdersByStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrdersByStay")
	defer scope.End()

	stayID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	orders, err := handler.service.GetAllByStay(ctx, stayID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// DeleteOrder deletes an order by its ID.
// @Summary Delete an order by ID
// @Description Delete an order using its unique identifier.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message "Order deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete order")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Order deleted successfully")
}

// GetTodayBreakfastOrders lists today's breakfast orders of active stays.
// @Summary Get today's breakfast orders
// @Description Retrieve today's food and beverage orders of active stays, annotated with guest and cabin names.
// @Tags Breakfast
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBreakfastOrdersResponse] "Today's breakfast orders"
// @Failure 500 {object} response.Error
// @Router /v1/breakfast/orders [get]
// @Security BearerAuth
func (handler *Handler) GetTodayBreakfastOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayBreakfastOrders")
	defer scope.End()

	orders, err := handler.service.GetTodayBreakfastOrders(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's breakfast orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Breakfast orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// GetExpectedDiners answers the expected breakfast diner count.
// @Summary Get the expected diner count
// @Description Sum the guest counts of all active stays.
// @Tags Breakfast
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ExpectedDinersResponse] "Expected diner count"
// @Failure 500 {object} response.Error
// @Router /v1/breakfast/diners [get]
// @Security BearerAuth
func (handler *Handler) GetExpectedDiners(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpectedDiners")
	defer scope.End()

	diners, err := handler.service.GetExpectedDiners(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expected diners")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expected diners retrieved successfully")

	response.WithJSON(w, http.StatusOK, diners)
}
