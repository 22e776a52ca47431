package infra

// pdf.go — production receipt generation using go-pdf/fpdf.
// Generates a small A7-size receipt with the product name, quantity, the
// snapshot of consumed materials, and the bold total cost. The output file
// is saved to storagePath/confeccao_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"makarios/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF renders the receipt for a committed Confeccao and
// returns the absolute path of the generated file.
func GenerateReciboPDF(c *model.Confeccao, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: criar diretório: %w", err)
	}

	fileName := fmt.Sprintf("confeccao_%s.pdf", c.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — receipt-style paper (custom size, "A7" is not
	// in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Makarios", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Confeccao", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Run info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d x %s", c.QuantidadeConfeccionada, c.ProdutoNome), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, c.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Materials table ──────────────────────────────────────────────────
	col1 := contentW * 0.55 // material name
	col2 := contentW * 0.45 // quantity per unit

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 4, "Material", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 4, "Qtd/unid", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range c.Itens {
		pdf.CellFormat(col1, 4, item.MaterialNome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, fmt.Sprintf("%s %s", item.QuantidadeUsada, item.UnidadeUso), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Custo total: R$ %s", c.CustoTotal.StringFixed(2)), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: gravar arquivo: %w", err)
	}
	return filePath, nil
}
