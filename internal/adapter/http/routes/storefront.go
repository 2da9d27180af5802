package routes

import (
	"repairhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathBookings  = "/bookings"
	PathVouchers  = "/vouchers"
	PathCustomers = "/customers"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	staff gin.HandlerFunc,
	orderHandler *handlers.OrderHandler,
	bookingHandler *handlers.BookingHandler,
	voucherHandler *handlers.VoucherHandler,
	customerHandler *handlers.CustomerHandler,
) {
	orders := rg.Group(PathOrders)
	{
		// Checkout and order lookups are public; lifecycle edits are staff-only.
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("", orderHandler.CreateOrder)
		orders.PUT("/:id", staff, orderHandler.UpdateOrder)
		orders.POST("/:id/cancel", staff, orderHandler.CancelOrder)
		orders.POST("/:id/refund", staff, orderHandler.RefundOrder)
		orders.DELETE("/:id", staff, orderHandler.DeleteOrder)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.PUT("/:id", staff, bookingHandler.UpdateBooking)
		bookings.DELETE("/:id", staff, bookingHandler.DeleteBooking)
		// Quote protocol: staff proposes, the customer accepts or declines
		// authorized by identity match.
		bookings.POST("/:id/quote", staff, bookingHandler.ProposeQuote)
		bookings.POST("/:id/quote/accept", bookingHandler.AcceptQuote)
		bookings.POST("/:id/quote/decline", bookingHandler.DeclineQuote)
	}

	vouchers := rg.Group(PathVouchers)
	{
		vouchers.GET("", staff, voucherHandler.ListVouchers)
		vouchers.POST("", staff, voucherHandler.CreateVoucher)
		vouchers.POST("/assign", staff, voucherHandler.AssignVoucher)
		vouchers.POST("/redeem", voucherHandler.RedeemVoucher)
		vouchers.GET("/by-customer", voucherHandler.ListByCustomer)
		vouchers.DELETE("/:code", staff, voucherHandler.DeleteVoucher)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.POST("", customerHandler.UpsertCustomer)
		customers.PUT("/:id", staff, customerHandler.UpdateCustomer)
		customers.DELETE("/:id", staff, customerHandler.DeleteCustomer)
	}
}
