package routes

import (
	"afclean/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs     = "/jobs"
	PathLedger   = "/ledger"
	PathSettings = "/settings"
)

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", h.CreateJob)
		jobs.GET("/:id", h.GetJob)
		jobs.PATCH("/:id", h.UpdateJob)
		jobs.DELETE("/:id", h.DeleteJob)
		jobs.POST("/:id/finalize", h.Finalize)

		// Evidence
		jobs.POST("/:id/photos/:phase", h.AddPhoto)
		jobs.DELETE("/:id/photos/:phase/:index", h.RemovePhoto)
	}
}

func addLedgerRoutes(rg *gin.RouterGroup, h *handlers.LedgerHandler) {
	ledger := rg.Group(PathLedger)
	{
		ledger.GET("", h.ListEntries)
		ledger.POST("", h.CreateEntry)
		ledger.DELETE("", h.DeleteAll)
		ledger.PATCH("/:id", h.UpdateEntry)
		ledger.DELETE("/:id", h.DeleteEntry)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.GetSettings)
		settings.POST("", h.SetSetting)
		settings.GET("/:key", h.GetSetting)
	}
}
