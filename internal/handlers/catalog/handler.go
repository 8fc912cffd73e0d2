package catalog

import (
	"encoding/json"
	"net/http"
	"pousada/infras/otel"
	"pousada/internal/domains/catalog/model"
	"pousada/internal/domains/catalog/model/dto"
	"pousada/internal/domains/catalog/service"
	"pousada/shared"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCatalogItem)
		routerGroup.Get("/", handler.GetCatalogItems)
		routerGroup.Get("/{id}", handler.GetCatalogItemByID)
		routerGroup.Patch("/{id}", handler.UpdateCatalogItem)
		routerGroup.Delete("/{id}", handler.DeleteCatalogItem)
	})
}

// parseStockControl reads the stock control form fields, rejecting
// non-numeric quantity text.
func parseStockControl(r *http.Request) (*dto.StockControl, error) {
	enabledStr := r.FormValue("stock_enabled")
	quantityStr := r.FormValue("stock_quantity")

	if enabledStr == constant.Empty && quantityStr == constant.Empty {
		return nil, nil
	}

	stockControl := &dto.StockControl{}

	if enabled := shared.ConvertStringToBool(enabledStr); enabled != nil {
		stockControl.Enabled = *enabled
	}

	if quantityStr != constant.Empty {
		quantity, err := shared.ConvertStringToInt(quantityStr)
		if err != nil {
			return nil, failure.BadRequestFromString("stock quantity must be a number") // nolint:wrapcheck
		}

		stockControl.Quantity = quantity
	}

	return stockControl, nil
}

func parseFlavors(r *http.Request) ([]dto.Flavor, error) {
	flavorsStr := r.FormValue("flavors")
	if flavorsStr == constant.Empty {
		return nil, nil
	}

	var flavors []dto.Flavor
	if err := json.Unmarshal([]byte(flavorsStr), &flavors); err != nil {
		return nil, failure.BadRequestFromString("flavors must be a JSON array") // nolint:wrapcheck
	}

	return flavors, nil
}

// CreateCatalogItem handles the creation of a new catalog item.
// @Summary Create a new catalog item
// @Description Create a new catalog item with the provided details.
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Item name"
// @Param type formData string true "Item type (loan, consumable, food, beverage)"
// @Param category formData string true "Item category"
// @Param description formData string false "Item description"
// @Param price formData string false "Item price"
// @Param is_active formData boolean false "Item active status"
// @Param stock_enabled formData boolean false "Stock control enabled (loan/consumable)"
// @Param stock_quantity formData integer false "Stock quantity (loan/consumable)"
// @Param flavors formData string false "Flavors JSON array (food/beverage)"
// @Param image formData file false "Item image"
// @Success 201 {object} response.Message "Catalog item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog [post]
// @Security BearerAuth
func (handler *Handler) CreateCatalogItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCatalogItem")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateCatalogItemRequest{
		Name:        request.FormValue("name"),
		Type:        request.FormValue("type"),
		Category:    request.FormValue("category"),
		Description: request.FormValue("description"),
	}

	if priceStr := request.FormValue("price"); priceStr != constant.Empty {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.BadRequestFromString("price must be a number"))

			return
		}

		req.Price = price
	}

	if activeStr := request.FormValue("is_active"); activeStr != constant.Empty {
		req.IsActive = shared.ConvertStringToBool(activeStr)
	}

	stockControl, err := parseStockControl(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}
	req.StockControl = stockControl

	flavors, err := parseFlavors(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}
	req.Flavors = flavors

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create catalog item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalog item created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Catalog item created successfully")
}

// GetCatalogItems retrieves all catalog items based on query parameters.
// @Summary Get all catalog items
// @Description Retrieve all catalog items with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param type query string false "Filter by type"
// @Param category query string false "Filter by category"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetCatalogItemsResponse] "List of catalog items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog [get]
// @Security BearerAuth
func (handler *Handler) GetCatalogItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalogItems")
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

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if itemType := r.URL.Query().Get(model.FieldType); itemType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    itemType,
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

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalog items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalog items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetCatalogItemByID retrieves a catalog item by its ID.
// @Summary Get a catalog item by ID
// @Description Retrieve a catalog item by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} response.Data[dto.CatalogItemResponse] "Catalog item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCatalogItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalogItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalog item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalog item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateCatalogItem updates an existing catalog item by its ID.
// @Summary Update a catalog item by ID
// @Description Update the details of an existing catalog item. The item type cannot change.
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Catalog item ID"
// @Param name formData string false "Item name"
// @Param category formData string false "Item category"
// @Param description formData string false "Item description"
// @Param price formData string false "Item price"
// @Param is_active formData boolean false "Item active status"
// @Param stock_enabled formData boolean false "Stock control enabled (loan/consumable)"
// @Param stock_quantity formData integer false "Stock quantity (loan/consumable)"
// @Param flavors formData string false "Flavors JSON array (food/beverage)"
// @Param image formData file false "Item image"
// @Success 200 {object} response.Message "Catalog item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCatalogItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCatalogItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateCatalogItemRequest{
		Name:        r.FormValue("name"),
		Type:        r.FormValue("type"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("price"); priceStr != constant.Empty {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("price must be a number"))

			return
		}

		req.Price = &price
	}

	if activeStr := r.FormValue("is_active"); activeStr != constant.Empty {
		req.IsActive = shared.ConvertStringToBool(activeStr)
	}

	stockControl, err := parseStockControl(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}
	req.StockControl = stockControl

	flavors, err := parseFlavors(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}
	req.Flavors = flavors

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update catalog item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalog item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Catalog item updated successfully")
}

// DeleteCatalogItem deletes a catalog item by its ID.
// @Summary Delete a catalog item by ID
// @Description Delete a catalog item using its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} response.Message "Catalog item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCatalogItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete catalog item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalog item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Catalog item deleted successfully")
}
