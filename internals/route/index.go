// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseRoute "litefarm_backend/internals/features/expenses/route"
	farmRoute "litefarm_backend/internals/features/farms/route"
	fieldRoute "litefarm_backend/internals/features/fields/route"
	logRoute "litefarm_backend/internals/features/logs/route"
	shiftRoute "litefarm_backend/internals/features/shifts/route"
	authRoute "litefarm_backend/internals/features/users/auth/route"
	userRoute "litefarm_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature on the shared /api prefix. Each
// feature registers its own middleware chain.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up FarmRoutes...")
	farmRoute.FarmRoutes(api, db)

	log.Println("[INFO] Setting up FieldRoutes...")
	fieldRoute.FieldRoutes(api, db)

	log.Println("[INFO] Setting up LogRoutes...")
	logRoute.LogRoutes(api, db)

	log.Println("[INFO] Setting up ShiftRoutes...")
	shiftRoute.ShiftRoutes(api, db)

	log.Println("[INFO] Setting up ExpenseRoutes...")
	expenseRoute.ExpenseRoutes(api, db)
}
