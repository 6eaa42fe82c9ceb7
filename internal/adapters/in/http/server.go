// Package http exposes the delivery coordination API over REST.
// It coordinates between HTTP handlers and application use cases; every
// route runs behind the principal middleware, so handlers always act on a
// resolved identity.
package http

import (
	"net/http"

	"tawsil/internal/core/application/usecases/commands"
	"tawsil/internal/core/application/usecases/queries"
	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/core/domain/services"
	"tawsil/internal/core/ports"
	"tawsil/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST routes to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	editOrderHandler         commands.EditOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	claimRoleHandler         commands.ClaimRoleCommandHandler
	assignRoleHandler        commands.AssignRoleCommandHandler
	createLocationHandler    commands.CreateLocationCommandHandler
	editLocationHandler      commands.EditLocationCommandHandler
	deleteLocationHandler    commands.DeleteLocationCommandHandler

	// Query handlers
	getOrderPageHandler    queries.GetOrderPageQueryHandler
	getOwnOrdersHandler    queries.GetOwnOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getAllUsersHandler     queries.GetAllUsersQueryHandler
	getAllLocationsHandler queries.GetAllLocationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	claimRoleHandler commands.ClaimRoleCommandHandler,
	assignRoleHandler commands.AssignRoleCommandHandler,
	createLocationHandler commands.CreateLocationCommandHandler,
	editLocationHandler commands.EditLocationCommandHandler,
	deleteLocationHandler commands.DeleteLocationCommandHandler,
	getOrderPageHandler queries.GetOrderPageQueryHandler,
	getOwnOrdersHandler queries.GetOwnOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllUsersHandler queries.GetAllUsersQueryHandler,
	getAllLocationsHandler queries.GetAllLocationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		editOrderHandler:         editOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		claimRoleHandler:         claimRoleHandler,
		assignRoleHandler:        assignRoleHandler,
		createLocationHandler:    createLocationHandler,
		editLocationHandler:      editLocationHandler,
		deleteLocationHandler:    deleteLocationHandler,
		getOrderPageHandler:      getOrderPageHandler,
		getOwnOrdersHandler:      getOwnOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getAllUsersHandler:       getAllUsersHandler,
		getAllLocationsHandler:   getAllLocationsHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance behind the
// principal middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, resolver ports.PrincipalResolver) {
	api := e.Group("/api/v1", PrincipalMiddleware(resolver))

	api.GET("/orders", s.GetOwnOrders)
	api.GET("/orders/all", s.GetOrderPage)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/users", s.GetUsers)
	api.PUT("/users/:id", s.AssignRole)
	api.POST("/set-role", s.SetRole)

	api.GET("/locations", s.GetLocations)
	api.POST("/locations", s.CreateLocation)
	api.PUT("/locations/:id", s.UpdateLocation)
	api.DELETE("/locations/:id", s.DeleteLocation)
}

// GetOwnOrders handles GET /api/v1/orders - the unpaged per-principal listing.
func (s *Server) GetOwnOrders(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOwnOrdersQuery(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOwnOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetOrderPage handles GET /api/v1/orders/all - the tab-scoped paged listing.
func (s *Server) GetOrderPage(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	tab, err := services.TabFromString(ctx.QueryParam("tab"))
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return writeError(ctx, err)
	}
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderPageQuery(principal, tab, page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderPageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderPage{
		Orders:  ordersFromResponses(resp.Orders),
		Total:   resp.Total,
		HasMore: resp.HasMore,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req OrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal, details)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// UpdateOrder handles PUT /api/v1/orders/:id.
// The payload selects the path: a status or courierNote field makes this a
// lifecycle transition, anything else is a detail edit on a NEW order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	if req.Status != nil || req.CourierNote != nil {
		return s.changeOrderStatus(ctx, orderID, principal, req)
	}

	details, err := detailsFromRequest(req.OrderRequest)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(orderID, principal, details)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) changeOrderStatus(
	ctx echo.Context,
	orderID kernel.UUID,
	principal account.Principal,
	req UpdateOrderRequest,
) error {
	status := order.StatusUnknown
	if req.Status != nil {
		parsed, err := order.StatusFromString(*req.Status)
		if err != nil {
			return writeError(ctx, err)
		}
		status = parsed
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, principal, status, req.CourierNote)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/v1/users - the admin user directory.
func (s *Server) GetUsers(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllUsersQuery(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]User, 0, len(users))
	for _, user := range users {
		resp = append(resp, User{
			ID:        user.ID.String(),
			Email:     user.Email,
			Name:      user.Name,
			Image:     user.Image,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AssignRole handles PUT /api/v1/users/:id - admin role changes.
func (s *Server) AssignRole(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	userID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignRoleCommand(userID, principal, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRole handles POST /api/v1/set-role - the one-shot role self-assignment.
func (s *Server) SetRole(ctx echo.Context) error {
	var req SetRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	email := ctx.Request().Header.Get(HeaderUserEmail)
	name := ctx.Request().Header.Get(HeaderUserName)
	image := ctx.Request().Header.Get(HeaderUserImage)

	cmd, err := commands.NewClaimRoleCommand(email, name, image, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.claimRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLocations handles GET /api/v1/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllLocationsQuery(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	locations, err := s.getAllLocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]Location, 0, len(locations))
	for _, loc := range locations {
		resp = append(resp, Location{
			ID:        loc.ID.String(),
			Name:      loc.Name,
			MapLink:   loc.MapLink,
			CreatedAt: loc.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req LocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	locationID := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(locationID, principal, req.Name, req.MapLink)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": locationID.String()})
}

// UpdateLocation handles PUT /api/v1/locations/:id.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	locationID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req LocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditLocationCommand(locationID, principal, req.Name, req.MapLink)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.editLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLocation handles DELETE /api/v1/locations/:id.
func (s *Server) DeleteLocation(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	locationID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteLocationCommand(locationID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func detailsFromRequest(req OrderRequest) (order.Details, error) {
	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		domainItem, err := order.NewItem(item.Name, item.Quantity)
		if err != nil {
			return order.Details{}, err
		}
		items = append(items, domainItem)
	}

	return order.Details{
		CustomerName:  req.CustomerName,
		Location:      req.Location,
		MapLink:       req.MapLink,
		DeliveryTime:  req.DeliveryTime,
		ReceiverName:  req.ReceiverName,
		ReceiverPhone: req.ReceiverPhone,
		Note:          req.Note,
		Items:         items,
	}, nil
}

// pathUUID parses a UUID path parameter. The parse failure is wrapped so a
// malformed id surfaces as a 400, not an internal error.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	var value int
	if err := echo.QueryParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
