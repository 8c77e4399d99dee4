package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// GET /api/seller/export-selling-history?sellerId=...
func ExportSellingHistory(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.Query("sellerId")
		if sellerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Seller ID is required"})
			return
		}

		sales, err := store.SalesBySeller(c.Request.Context(), sellerID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Selling History")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "ProductID", "ProductName", "Quantity",
			"TotalPrice", "Address", "BuyerID", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, sale := range sales {
			row := sheet.AddRow()
			row.AddCell().SetValue(sale.ID)
			row.AddCell().SetValue(sale.ProductID)
			row.AddCell().SetValue(sale.ProductName)
			row.AddCell().SetValue(sale.Quantity)
			row.AddCell().SetValue(sale.TotalPrice)
			row.AddCell().SetValue(sale.Address)
			row.AddCell().SetValue(sale.UserID)
			if sale.CreatedAt != nil {
				row.AddCell().SetValue(sale.CreatedAt.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
		}

		c.Header("Content-Disposition", "attachment; filename=selling-history.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
