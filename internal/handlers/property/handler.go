package property

import (
	"net/http"
	"pousada/infras/jwt"
	"pousada/infras/otel"
	"pousada/internal/domains/property/model/dto"
	"pousada/internal/domains/property/service"
	"pousada/shared/constant"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers setup and property endpoints. The breakfast settings
// paths share the /breakfast subtree with the aggregation endpoints and
// are registered directly.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/setup", handler.Setup)
	router.Get("/property", handler.GetProperty)
	router.Get("/breakfast/settings", handler.GetBreakfastSettings)
	router.Patch("/breakfast/settings", handler.UpdateBreakfastSettings)
}

// Setup bootstraps the property row.
// @Summary Bootstrap the property
// @Description Create the property row on first run. Guarded by the configured setup token instead of a user session.
// @Tags Property
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer setup token"
// @Param request body dto.SetupPropertyRequest true "Property payload"
// @Success 200 {object} response.Message "Property already exists"
// @Success 201 {object} response.Message "Property created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/setup [post]
func (handler *Handler) Setup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Setup")
	defer scope.End()

	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.Unauthorized("invalid setup token"))

		return
	}

	var req dto.SetupPropertyRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Setup(ctx, token, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set up property")

		response.WithError(writer, err)

		return
	}

	if !created {
		response.WithMessage(writer, http.StatusOK, "Property already exists")

		return
	}

	scope.AddEvent("Property created successfully")

	response.WithMessage(writer, http.StatusCreated, "Property created successfully")
}

// GetProperty retrieves the property profile and settings.
// @Summary Get the property
// @Description Retrieve the property profile, customization and settings.
// @Tags Property
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/property [get]
// @Security BearerAuth
func (handler *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperty")
	defer scope.End()

	property, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// GetBreakfastSettings retrieves the breakfast module settings.
// @Summary Get the breakfast settings
// @Description Retrieve the breakfast section of the property settings.
// @Tags Breakfast
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BreakfastSettingsResponse] "Breakfast settings"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/breakfast/settings [get]
// @Security BearerAuth
func (handler *Handler) GetBreakfastSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBreakfastSettings")
	defer scope.End()

	settings, err := handler.service.GetBreakfastSettings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get breakfast settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Breakfast settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateBreakfastSettings updates the breakfast module settings.
// @Summary Update the breakfast settings
// @Description Patch the breakfast section of the property settings.
// @Tags Breakfast
// @Accept json
// @Produce json
// @Param request body dto.UpdateBreakfastSettingsRequest true "Fields to update"
// @Success 200 {object} response.Message "Breakfast settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/breakfast/settings [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBreakfastSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBreakfastSettings")
	defer scope.End()

	var req dto.UpdateBreakfastSettingsRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateBreakfastSettings(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update breakfast settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Breakfast settings updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Breakfast settings updated successfully")
}
