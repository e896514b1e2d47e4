package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write-side use cases the server exposes.
type CommandHandlers struct {
	CreateCourier commands.CreateCourierCommandHandler
	EditCourier   commands.EditCourierCommandHandler
	CreateOrder   commands.CreateOrderCommandHandler
	AssignOrders  commands.AssignOrdersCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler
}

// QueryHandlers groups the read-side use cases the server exposes.
type QueryHandlers struct {
	GetAllCouriers      queries.GetAllCouriersQueryHandler
	GetCourier          queries.GetCourierQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetUnassignedOrders queries.GetUnassignedOrdersQueryHandler
	CourierRating       queries.CourierRatingQueryHandler
	CourierEarnings     queries.CourierEarningsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/couriers", s.CreateCouriers)
	e.GET("/couriers", s.GetCouriers)
	e.GET("/couriers/:courier_id", s.GetCourier)
	e.PATCH("/couriers/:courier_id", s.EditCourier)
	e.POST("/orders", s.CreateOrders)
	e.GET("/orders", s.GetOrders)
	e.POST("/orders/assign", s.AssignOrders)
	e.POST("/orders/complete", s.CompleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCouriers handles POST /couriers - bulk registration of couriers.
// Items that fail validation are reported together; none of the listed ids
// is registered when the response is 400.
func (s *Server) CreateCouriers(ctx echo.Context) error {
	var req createCouriersRequest
	if err := ctx.Bind(&req); err != nil || req.Data == nil {
		return badRequest(ctx, "data field is required")
	}

	cmds := make([]commands.CreateCourierCommand, 0, len(req.Data))
	var failed []idResponse
	for _, payload := range req.Data {
		shifts, err := parseIntervals(payload.WorkingHours)
		if err != nil {
			failed = append(failed, idResponse{ID: payload.CourierID})
			continue
		}

		cmd, err := commands.NewCreateCourierCommand(
			payload.CourierID, payload.CourierType, payload.Regions, shifts)
		if err != nil {
			failed = append(failed, idResponse{ID: payload.CourierID})
			continue
		}
		cmds = append(cmds, cmd)
	}
	if len(failed) > 0 {
		return ctx.JSON(http.StatusBadRequest, validationErrorResponse{
			ValidationError: map[string][]idResponse{"couriers": failed},
		})
	}

	created := make([]idResponse, 0, len(cmds))
	for _, cmd := range cmds {
		if err := s.commands.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
			switch {
			case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrObjectNotFound):
				failed = append(failed, idResponse{ID: cmd.CourierID()})
			default:
				return internalError(ctx, "failed to create courier")
			}
			continue
		}
		created = append(created, idResponse{ID: cmd.CourierID()})
	}
	if len(failed) > 0 {
		return ctx.JSON(http.StatusBadRequest, validationErrorResponse{
			ValidationError: map[string][]idResponse{"couriers": failed},
		})
	}

	return ctx.JSON(http.StatusCreated, createCouriersResponse{Couriers: created})
}

// GetCouriers handles GET /couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.queries.GetAllCouriers.Handle(
		ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve couriers")
	}

	response := make([]courierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = courierResponse{
			CourierID:    c.ID,
			CourierType:  c.TypeCode,
			Regions:      c.RegionIDs,
			WorkingHours: c.Shifts,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCourier handles GET /couriers/:courier_id - courier info with rating
// and earnings. Both metrics are omitted while the courier has no completed
// shipments.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := courierIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}

	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	info, err := s.queries.GetCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	ratingQuery, err := queries.NewCourierRatingQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	rating, err := s.queries.CourierRating.Handle(ctx.Request().Context(), ratingQuery)
	if err != nil {
		return internalError(ctx, "failed to compute rating")
	}

	earningsQuery, err := queries.NewCourierEarningsQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	earnings, err := s.queries.CourierEarnings.Handle(ctx.Request().Context(), earningsQuery)
	if err != nil {
		return internalError(ctx, "failed to compute earnings")
	}

	return ctx.JSON(http.StatusOK, courierResponse{
		CourierID:    info.ID,
		CourierType:  info.TypeCode,
		Regions:      info.RegionIDs,
		WorkingHours: info.Shifts,
		Rating:       rating,
		Earnings:     earnings,
	})
}

// EditCourier handles PATCH /couriers/:courier_id - partial update of type,
// regions, or working hours. Omitted fields keep their prior values. Editing
// re-validates the courier's active shipment, so orders that no longer fit
// return to the unassigned pool.
func (s *Server) EditCourier(ctx echo.Context) error {
	courierID, err := courierIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}

	var req editCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	shifts, err := parseIntervals(req.WorkingHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewEditCourierCommand(courierID, req.CourierType, req.Regions, shifts)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.commands.EditCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierResponse{
		CourierID:    updated.ID(),
		CourierType:  updated.Type().Code(),
		Regions:      updated.RegionIDs(),
		WorkingHours: formatIntervals(updated.Shifts()),
	})
}

// CreateOrders handles POST /orders - bulk registration of orders.
func (s *Server) CreateOrders(ctx echo.Context) error {
	var req createOrdersRequest
	if err := ctx.Bind(&req); err != nil || req.Data == nil {
		return badRequest(ctx, "data field is required")
	}

	cmds := make([]commands.CreateOrderCommand, 0, len(req.Data))
	var failed []idResponse
	for _, payload := range req.Data {
		intervals, err := parseIntervals(payload.DeliveryHours)
		if err != nil {
			failed = append(failed, idResponse{ID: payload.OrderID})
			continue
		}

		weight, err := kernel.NewWeight(payload.Weight)
		if err != nil {
			failed = append(failed, idResponse{ID: payload.OrderID})
			continue
		}

		cmd, err := commands.NewCreateOrderCommand(payload.OrderID, weight, payload.Region, intervals)
		if err != nil {
			failed = append(failed, idResponse{ID: payload.OrderID})
			continue
		}
		cmds = append(cmds, cmd)
	}
	if len(failed) > 0 {
		return ctx.JSON(http.StatusBadRequest, validationErrorResponse{
			ValidationError: map[string][]idResponse{"orders": failed},
		})
	}

	created := make([]idResponse, 0, len(cmds))
	for _, cmd := range cmds {
		if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
			switch {
			case errors.Is(err, errs.ErrConflict):
				failed = append(failed, idResponse{ID: cmd.OrderID()})
			default:
				return internalError(ctx, "failed to create order")
			}
			continue
		}
		created = append(created, idResponse{ID: cmd.OrderID()})
	}
	if len(failed) > 0 {
		return ctx.JSON(http.StatusBadRequest, validationErrorResponse{
			ValidationError: map[string][]idResponse{"orders": failed},
		})
	}

	return ctx.JSON(http.StatusCreated, createOrdersResponse{Orders: created})
}

// GetOrders handles GET /orders - orders waiting for assignment.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.queries.GetUnassignedOrders.Handle(
		ctx.Request().Context(), queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve orders")
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			OrderID: o.ID,
			Weight:  o.Weight,
			Region:  o.RegionID,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignOrders handles POST /orders/assign - packs a bag for the courier or
// returns the snapshot of an already active shipment.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var req assignOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignOrdersCommand(req.CourierID, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.commands.AssignOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := assignOrdersResponse{Orders: make([]idResponse, len(result.OrderIDs))}
	for i, id := range result.OrderIDs {
		response.Orders[i] = idResponse{ID: id}
	}
	if result.AssignTime != nil {
		formatted := result.AssignTime.Format(time.RFC3339)
		response.AssignTime = &formatted
	}
	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles POST /orders/complete. The order must belong to a
// shipment of the claimed courier and the completion time must not precede
// the shipment's assign time; those checks run here, before the command.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var req completeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	completeTime, err := time.Parse(time.RFC3339, req.CompleteTime)
	if err != nil {
		return badRequest(ctx, "invalid complete_time")
	}

	query, err := queries.NewGetOrderQuery(req.OrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	info, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if info.CompleteTime == nil {
		if info.ShipmentID == nil {
			return badRequest(ctx, "order is not assigned")
		}
		if info.ShipmentCourierID == nil || *info.ShipmentCourierID != req.CourierID {
			return badRequest(ctx, "order is assigned to another courier")
		}
		if info.ShipmentAssignTime != nil && completeTime.Before(*info.ShipmentAssignTime) {
			return badRequest(ctx, "complete_time precedes assign time")
		}
	}

	cmd, err := commands.NewCompleteOrderCommand(req.OrderID, completeTime)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, completeOrderResponse{OrderID: req.OrderID})
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, apiError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, apiError{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func courierIDParam(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("courier_id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, apiError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, apiError{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
