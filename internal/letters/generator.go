package letters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

type StudentData struct {
	Nombre string
	Codigo string
	DNI    string
}

type CompanyData struct {
	Nombre    string
	RUC       string
	Direccion string
}

// Generator renders presentation letters as PDF files under a fixed
// output directory.
type Generator struct {
	outDir string
}

func NewGenerator(outDir string) (*Generator, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("letters.NewGenerator: cannot create dir %s: %w", outDir, err)
	}

	return &Generator{
		outDir: outDir,
	}, nil
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func formatLetterDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// Render writes the letter and returns the path of the generated file.
func (g *Generator) Render(student StudentData, company CompanyData) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	title := func(text string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(0, 0, 128)
		pdf.CellFormat(0, 8, tr(text), "", 1, "C", false, 0, "")
	}

	paragraph := func(text string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr(text), "", "J", false)
		pdf.Ln(4)
	}

	line := func(style, text string) {
		pdf.SetFont("Helvetica", style, 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6, tr(text), "", 1, "L", false, 0, "")
	}

	title("UNIVERSIDAD PERUANA UNION")
	title("FACULTAD DE INGENIERÍA DE SISTEMAS")
	title("DEPARTAMENTO ACADÉMICO DE INGENIERÍA DE SISTEMAS")
	pdf.Ln(8)
	title("CARTA DE PRESENTACIÓN")
	pdf.Ln(10)

	line("", "Lima, "+formatLetterDate(time.Now()))
	pdf.Ln(6)

	line("B", "Señores:")
	line("B", company.Nombre)
	line("B", "RUC: "+company.RUC)
	line("B", "Dirección: "+company.Direccion)
	pdf.Ln(6)

	line("", "Estimados señores:")
	pdf.Ln(4)

	paragraph(fmt.Sprintf(
		"Por medio de la presente, tengo a bien presentar al estudiante %s, "+
			"quien cursa sus estudios en nuestra Facultad, con código universitario %s y DNI %s.",
		student.Nombre, student.Codigo, student.DNI))

	paragraph("El estudiante mencionado desea realizar sus Prácticas Pre Profesionales en su distinguida empresa, " +
		"con el objetivo de aplicar los conocimientos adquiridos durante su formación académica y desarrollar " +
		"competencias profesionales en un entorno laboral real.")

	paragraph("Durante su formación, el estudiante ha demostrado un excelente rendimiento académico y ha desarrollado " +
		"habilidades técnicas y competencias profesionales que le permitirán contribuir de manera efectiva " +
		"a los objetivos de su organización.")

	paragraph("Por lo tanto, solicitamos a ustedes considerar favorablemente la solicitud del estudiante para realizar " +
		"sus prácticas pre profesionales en su empresa, brindándole la oportunidad de aplicar sus conocimientos " +
		"y desarrollar nuevas competencias en un entorno profesional.")

	paragraph("Agradecemos de antemano su atención y quedamos a la espera de su respuesta favorable.")

	line("", "Atentamente,")
	pdf.Ln(16)

	line("", "_________________________")
	line("B", "Dr. Dani Levano")
	line("B", "Director del Departamento Académico")
	line("B", "Ingeniería de Sistemas")
	pdf.Ln(8)

	line("", "Información de contacto:")
	line("", "Teléfono: (01) 481-1070")
	line("", "Email: sistemas@uni.edu.pe")
	line("", "Dirección: Av. Túpac Amaru 210, Rímac, Lima")

	filename := fmt.Sprintf("carta_presentacion_%s_%s_%s.pdf",
		student.Codigo,
		strings.ReplaceAll(company.Nombre, " ", "_"),
		uuid.New().String(),
	)
	path := filepath.Join(g.outDir, filename)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("Generator.Render: %w", err)
	}

	return path, nil
}
