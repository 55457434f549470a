package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
)

// ExportDares streams every dare as an xlsx workbook
// @Summary Export dares as a spreadsheet
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/export [get]
// @Security AdminKey
func ExportDares(c *gin.Context) {
	workbook, err := services.BuildDareWorkbook(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToExport)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("dares-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToExport)
		return
	}
}
