package app

import (
	handlers "github.com/Rishab260/loan-app-poc/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *GatewayApp) RegisterGatewayRoutes(loans *handlers.LoanHandler, auth *handlers.AuthHandler, authService handlers.AuthService) {
	a.Router.POST("/login", auth.Login)
	a.Router.POST("/logout", auth.Logout)
	a.Router.GET("/profile", handlers.AuthRequired(authService), auth.Profile)

	a.Router.POST("/submit", handlers.AuthRequired(authService), loans.Submit)
	a.Router.GET("/loans/:id", loans.GetLoan)
	a.Router.GET("/events/:id", loans.Events)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (a *ApproverApp) RegisterApproverRoutes(decisions *handlers.DecisionHandler) {
	a.Router.POST("/approve/:id", decisions.Approve)
	a.Router.POST("/deny/:id", decisions.Deny)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
