package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotecraft/collections"
	"quotecraft/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed the recommended quotes and run migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateDefaultProductionDays(app); err != nil {
			log.Printf("Warning: production days migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Quote CRUD ───────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/quotes/create", handlers.HandleQuoteCreateForm(app))
		se.Router.POST("/quotes", handlers.HandleQuoteSave(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Quote editing ────────────────────────────────────────
		se.Router.GET("/quotes/{id}/edit", handlers.HandleQuoteEdit(app))
		se.Router.POST("/quotes/{id}/fields", handlers.HandleQuoteFieldPatch(app))

		// ── Comparison ───────────────────────────────────────────
		se.Router.GET("/quotes/{id}/compare", handlers.HandleQuoteCompare(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		// Quote view (after specific /quotes/{id}/* routes)
		se.Router.GET("/quotes/{id}", handlers.HandleQuoteView(app))

		// Redirect home to the quote list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
