// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	apimiddleware "reminder/internal/delivery/api/middleware"
	"reminder/internal/delivery/api/router/handler"
	"reminder/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TaskHandler     *handler.TaskHandler
	EventHandler    *handler.EventHandler
	CallableHandler *handler.CallableHandler
	ServiceAuth     *middleware.ServiceAuthMiddleware
	CallerAuth      *apimiddleware.CallerAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	taskHandler     *handler.TaskHandler
	eventHandler    *handler.EventHandler
	callableHandler *handler.CallableHandler
	serviceAuth     *middleware.ServiceAuthMiddleware
	callerAuth      *apimiddleware.CallerAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		taskHandler:     params.TaskHandler,
		eventHandler:    params.EventHandler,
		callableHandler: params.CallableHandler,
		serviceAuth:     params.ServiceAuth,
		callerAuth:      params.CallerAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cloud Scheduler tick
	tasksGroup := e.Group("/tasks")
	tasksGroup.Use(r.serviceAuth.Verify)
	{
		tasksGroup.POST("/fan-out", r.taskHandler.FanOut)
	}

	// Eventarc Firestore triggers
	eventsGroup := e.Group("/events")
	eventsGroup.Use(r.serviceAuth.Verify)
	{
		eventsGroup.POST("/reminders", r.eventHandler.HandleReminderEvent)
	}

	// Callable functions used by the web app
	callableGroup := e.Group("/callable")
	callableGroup.Use(r.callerAuth.Authenticate)
	{
		callableGroup.POST("/triggerReminder", r.callableHandler.TriggerReminder)
	}
}
