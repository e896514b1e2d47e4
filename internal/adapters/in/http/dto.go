package http

import (
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type createCouriersRequest struct {
	Data []courierPayload `json:"data"`
}

type courierPayload struct {
	CourierID    uint64   `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []uint64 `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

type createOrdersRequest struct {
	Data []orderPayload `json:"data"`
}

type orderPayload struct {
	OrderID       uint64          `json:"order_id"`
	Weight        decimal.Decimal `json:"weight"`
	Region        uint64          `json:"region"`
	DeliveryHours []string        `json:"delivery_hours"`
}

type editCourierRequest struct {
	CourierType  string   `json:"courier_type"`
	Regions      []uint64 `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

type assignOrdersRequest struct {
	CourierID uint64 `json:"courier_id"`
}

type completeOrderRequest struct {
	CourierID    uint64 `json:"courier_id"`
	OrderID      uint64 `json:"order_id"`
	CompleteTime string `json:"complete_time"`
}

type idResponse struct {
	ID uint64 `json:"id"`
}

type createCouriersResponse struct {
	Couriers []idResponse `json:"couriers"`
}

type createOrdersResponse struct {
	Orders []idResponse `json:"orders"`
}

type assignOrdersResponse struct {
	Orders     []idResponse `json:"orders"`
	AssignTime *string      `json:"assign_time,omitempty"`
}

type completeOrderResponse struct {
	OrderID uint64 `json:"order_id"`
}

type courierResponse struct {
	CourierID    uint64   `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []uint64 `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       *float64 `json:"rating,omitempty"`
	Earnings     *int64   `json:"earnings,omitempty"`
}

type orderResponse struct {
	OrderID uint64          `json:"order_id"`
	Weight  decimal.Decimal `json:"weight"`
	Region  uint64          `json:"region"`
}

type validationErrorResponse struct {
	ValidationError any `json:"validation_error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func parseIntervals(values []string) ([]kernel.TimeInterval, error) {
	intervals := make([]kernel.TimeInterval, 0, len(values))
	for _, value := range values {
		interval, err := kernel.ParseTimeInterval(value)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

func formatIntervals(intervals []kernel.TimeInterval) []string {
	values := make([]string, len(intervals))
	for i, interval := range intervals {
		values[i] = interval.String()
	}
	return values
}
