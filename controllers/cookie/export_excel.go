package cookieController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/store"
)

// ExportCookiesToExcel streams the catalog as an .xlsx download.
func ExportCookiesToExcel(cookies *store.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cookies.ListAll()
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Cookies")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Name", "Description", "Category", "Price", "Image", "Ingredients", "BestSeller"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, cookie := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(cookie.ID)
			row.AddCell().SetValue(cookie.Name)
			row.AddCell().SetValue(cookie.Description)
			row.AddCell().SetValue(cookie.Category)
			row.AddCell().SetValue(cookie.Price)
			row.AddCell().SetValue(cookie.Image)
			row.AddCell().SetValue(strings.Join(cookie.Ingredients, ","))
			row.AddCell().SetValue(strconv.FormatBool(cookie.IsBestSeller))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=cookies.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
