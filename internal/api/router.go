package api

import (
	"github.com/adammwaniki/SendIT/internal/middleware" // Route gate
	"github.com/adammwaniki/SendIT/internal/session"    // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires every route behind the session gate. The server binary and
// the tests mount the same router.
func NewRouter(db *gorm.DB, mgr *session.Manager) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Single global interceptor: authentication policy lives in one place
	r.Use(middleware.SessionGate(mgr, db))

	// Public routes (must match the gate's allow-list)
	r.GET("/", IndexHandler())                            // Index banner
	r.POST("/signup", SignupHandler(db, mgr))             // Registration endpoint
	r.POST("/login", LoginHandler(db, mgr))               // Login endpoint
	r.DELETE("/logout", LogoutHandler(mgr))               // Logout endpoint
	r.GET("/check_session", CheckSessionHandler(db, mgr)) // Soft login probe

	// Users
	r.GET("/users", ListUsersHandler(db))          // List users
	r.POST("/users", CreateUserHandler(db))        // Create user
	r.GET("/users/:id", GetUserHandler(db))        // Fetch user
	r.PATCH("/users/:id", UpdateUserHandler(db))   // Partial update
	r.DELETE("/users/:id", DeleteUserHandler(db))  // Delete user

	// Roles
	r.GET("/roles", ListRolesHandler(db))
	r.POST("/roles", CreateRoleHandler(db))
	r.GET("/roles/:id", GetRoleHandler(db))
	r.PATCH("/roles/:id", UpdateRoleHandler(db))
	r.DELETE("/roles/:id", DeleteRoleHandler(db))

	// Recipients
	r.GET("/recipients", ListRecipientsHandler(db))
	r.POST("/recipients", CreateRecipientHandler(db))
	r.GET("/recipients/:id", GetRecipientHandler(db))
	r.PATCH("/recipients/:id", UpdateRecipientHandler(db))
	r.DELETE("/recipients/:id", DeleteRecipientHandler(db))

	// Parcels
	r.GET("/parcels", ListParcelsHandler(db))
	r.POST("/parcels", CreateParcelHandler(db))
	r.GET("/parcels/:id", GetParcelHandler(db))
	r.PATCH("/parcels/:id", UpdateParcelHandler(db))
	r.DELETE("/parcels/:id", DeleteParcelHandler(db))

	// Billing addresses
	r.GET("/billing_addresses", ListBillingAddressesHandler(db))
	r.POST("/billing_addresses", CreateBillingAddressHandler(db))
	r.GET("/billing_addresses/:id", GetBillingAddressHandler(db))
	r.PATCH("/billing_addresses/:id", UpdateBillingAddressHandler(db))
	r.DELETE("/billing_addresses/:id", DeleteBillingAddressHandler(db))

	return r
}
