package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/helaluddin100/greenbuild/internal/handlers"
	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
)

type Deps struct {
	DB                *gorm.DB
	Auth              *authmw.Middleware
	AuthHandler       *handlers.AuthHandler
	DesignHandler     *handlers.DesignHandler
	CartHandler       *handlers.CartHandler
	OrderHandler      *handlers.OrderHandler
	ReviewHandler     *handlers.ReviewHandler
	CommunityHandler  *handlers.CommunityHandler
	MessageHandler    *handlers.MessageHandler
	WithdrawalHandler *handlers.WithdrawalHandler
	SearchHandler     *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.POST("/logout", d.AuthHandler.Logout, d.Auth.RequireLogin)
	api.GET("/user", d.AuthHandler.Me, d.Auth.RequireLogin)

	api.GET("/designs", d.DesignHandler.ListDesigns)
	api.GET("/designs/:id", d.DesignHandler.GetDesign)
	api.GET("/designs/:id/reviews", d.ReviewHandler.ListReviews)
	api.POST("/designs/:id/reviews", d.ReviewHandler.CreateReview, d.Auth.RequireLogin)
	if d.SearchHandler != nil {
		api.GET("/search", d.SearchHandler.Search)
	}

	designer := api.Group("/designer")
	designer.POST("/designs", d.DesignHandler.CreateDesign, d.Auth.DesignerOnly)
	designer.PUT("/designs/:id", d.DesignHandler.UpdateDesign, d.Auth.DesignerOnly)
	designer.DELETE("/designs/:id", d.DesignHandler.DeleteDesign, d.Auth.DesignerOnly)
	designer.GET("/messages", d.MessageHandler.ListMessages, d.Auth.DesignerOnly)
	designer.POST("/withdrawals", d.WithdrawalHandler.CreateWithdrawal, d.Auth.DesignerOnly)
	designer.GET("/withdrawals", d.WithdrawalHandler.ListWithdrawals, d.Auth.DesignerOnly)

	cart := api.Group("/cart", d.Auth.RequireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:designID", d.CartHandler.UpdateCartItem)
	cart.DELETE("/:designID", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)

	orders := api.Group("/orders", d.Auth.RequireLogin)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)

	api.GET("/posts", d.CommunityHandler.ListPosts)
	api.GET("/posts/:id", d.CommunityHandler.GetPost)
	api.POST("/posts", d.CommunityHandler.CreatePost, d.Auth.RequireLogin)
	api.DELETE("/posts/:id", d.CommunityHandler.DeletePost, d.Auth.RequireLogin)
	api.POST("/posts/:id/comments", d.CommunityHandler.CreateComment, d.Auth.RequireLogin)

	api.POST("/messages", d.MessageHandler.CreateMessage)

	admin := api.Group("/admin")
	admin.PATCH("/withdrawals/:id", d.WithdrawalHandler.ReviewWithdrawal, d.Auth.AdminOnly)
}
