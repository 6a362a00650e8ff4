package main

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"ehds-lens/config"
	"ehds-lens/dataset"
	"ehds-lens/services"
)

// Dateiendungen je Reportformat
var reportExt = map[string]string{
	"markdown": ".md",
	"html":     ".html",
	"json":     ".json",
}

var bibliographyExt = map[string]string{
	"bibtex":    ".bib",
	"ris":       ".ris",
	"apa":       ".txt",
	"vancouver": ".txt",
}

func main() {
	log.Println("Starte Report-Export...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger-Initialisierung fehlgeschlagen: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fehler beim Laden der Konfiguration: %v", err)
	}

	// 1. Datenbank laden (konfigurierte Datei oder eingebauter Datensatz)
	analyzer := services.NewAnalyzer(nil, logger)
	if cfg.DatabasePath != "" {
		err = analyzer.LoadJSON(cfg.DatabasePath)
	} else {
		err = analyzer.LoadDefaultData()
	}
	if err != nil {
		log.Fatalf("Fehler beim Laden der Datenbank: %v", err)
	}

	// 2. Referenzbefunde laden
	findings, err := dataset.Findings()
	if err != nil {
		log.Fatalf("Fehler beim Laden der Referenzbefunde: %v", err)
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.Fatalf("Exportverzeichnis nicht anlegbar: %v", err)
	}

	// 3. Report schreiben
	ext, ok := reportExt[cfg.ReportFormat]
	if !ok {
		log.Fatalf("Unbekanntes Reportformat: %q", cfg.ReportFormat)
	}
	reports := services.NewReportGenerator(analyzer.Database(), logger)
	reportPath := filepath.Join(cfg.ExportDir, "report"+ext)
	if err := reports.WriteReport(reportPath, cfg.ReportFormat, findings); err != nil {
		log.Fatalf("Fehler beim Schreiben des Reports: %v", err)
	}
	log.Printf("Report geschrieben: %s", reportPath)

	// 4. Bibliographie schreiben
	bext, ok := bibliographyExt[cfg.BibliographyFormat]
	if !ok {
		log.Fatalf("Unbekanntes Bibliographieformat: %q", cfg.BibliographyFormat)
	}
	bib := services.NewBibliographyGenerator(analyzer.Database(), logger)
	bibPath := filepath.Join(cfg.ExportDir, "bibliography"+bext)
	if err := bib.WriteBibliography(bibPath, cfg.BibliographyFormat); err != nil {
		log.Fatalf("Fehler beim Schreiben der Bibliographie: %v", err)
	}
	log.Printf("Bibliographie geschrieben: %s", bibPath)

	// 5. Tabellenexporte und Extraktionsformular
	csvPath := filepath.Join(cfg.ExportDir, "studies.csv")
	if err := analyzer.ExportCSV(csvPath); err != nil {
		log.Fatalf("Fehler beim CSV-Export: %v", err)
	}
	tsvPath := filepath.Join(cfg.ExportDir, "studies.tsv")
	if err := analyzer.Database().WriteTSV(tsvPath); err != nil {
		log.Fatalf("Fehler beim TSV-Export: %v", err)
	}
	formPath := filepath.Join(cfg.ExportDir, "extraction_form.md")
	if err := services.WriteExtractionTemplate(formPath); err != nil {
		log.Fatalf("Fehler beim Schreiben des Extraktionsformulars: %v", err)
	}

	log.Println("Report-Export erfolgreich abgeschlossen.")
}
