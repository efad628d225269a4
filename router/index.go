package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Put("/:accountId", middleware.Protected(), validate.GetById("accountId"), validate.EditAccount(), handler.EditAccount)
	account.Patch("/:accountId/active/:isActive", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.OptionalJWT(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/code/:code", handler.GetBookingByCode)
	booking.Get("/code/:code/qrcode", handler.GetBookingQRCode)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Patch("/:bookingId/status", middleware.Protected(), validate.GetById("bookingId"), validate.UpdateBookingStatus(), handler.UpdateBookingStatus)

	event := v1.Group("/event", logger.New())
	event.Post("/", validate.CreateEvent(), handler.CreateEvent)
	event.Post("/admin", middleware.Protected(), validate.CreateEvent(), handler.AdminCreateEvent)
	event.Get("/", middleware.Protected(), handler.GetEvents)
	event.Get("/availability", handler.CheckAvailability)
	event.Get("/code/:code", handler.GetEventByCode)
	event.Get("/:eventId", middleware.Protected(), validate.GetById("eventId"), handler.GetEventById)
	event.Patch("/:eventId/status", middleware.Protected(), validate.GetById("eventId"), validate.UpdateEventStatus(), handler.UpdateEventStatus)

	preorder := v1.Group("/preorder", logger.New())
	preorder.Post("/", validate.CreatePreOrder(), handler.CreatePreOrder)
	preorder.Get("/", middleware.Protected(), handler.GetPreOrders)
	preorder.Get("/:preOrderId", middleware.Protected(), validate.GetById("preOrderId"), handler.GetPreOrderById)
	preorder.Patch("/:preOrderId/status", middleware.Protected(), validate.GetById("preOrderId"), validate.UpdatePreOrderStatus(), handler.UpdatePreOrderStatus)

	cancel := v1.Group("/cancel", logger.New())
	cancel.Post("/request", validate.OtpRequest(), handler.RequestCancellationOtp)
	cancel.Post("/resend", validate.OtpRequest(), handler.ResendCancellationOtp)
	cancel.Post("/verify", validate.OtpVerify(), handler.VerifyCancellationOtp)

	table := v1.Group("/table", logger.New())
	table.Get("/", handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), validate.GetById("tableId"), validate.EditTable(), handler.EditTable)
	table.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTables)

	category := v1.Group("/category", logger.New())
	category.Get("/", handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), validate.EditCategory(), handler.EditCategory)
	category.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategories)

	menu := v1.Group("/menu", logger.New())
	menu.Get("/", handler.GetMenu)
	menu.Get("/:menuItemId", validate.GetById("menuItemId"), handler.GetMenuItemById)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:menuItemId", middleware.Protected(), validate.GetById("menuItemId"), validate.EditMenuItem(), handler.EditMenuItem)
	menu.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteMenuItems)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Post("/", validate.CreateFeedback(), handler.CreateFeedback)
	feedback.Get("/", middleware.Protected(), handler.GetFeedback)
	feedback.Post("/:feedbackId/reply", middleware.Protected(), validate.GetById("feedbackId"), validate.ReplyFeedback(), handler.ReplyFeedback)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)

	dashboard := v1.Group("/dashboard", logger.New())
	dashboard.Get("/", middleware.Protected(), handler.GetDashboardStats)
	dashboard.Get("/weekly", middleware.Protected(), handler.GetWeeklyReport)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/", handler.GetSettings)
	settings.Put("/", middleware.Protected(), validate.UpdateSettings(), handler.UpdateSettings)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/operations", websocket.New(handler.OperationsFeed))
}
