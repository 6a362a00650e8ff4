package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	// Pfad zur JSON-Datenbankdatei; leer bedeutet eingebauter Datensatz
	DatabasePath string `envconfig:"DATABASE_PATH"`
	ExportDir    string `envconfig:"EXPORT_DIR" default:"exports"`

	ReportFormat       string `envconfig:"REPORT_FORMAT" default:"markdown"`
	BibliographyFormat string `envconfig:"BIBLIOGRAPHY_FORMAT" default:"bibtex"`
	CitationStyle      string `envconfig:"CITATION_STYLE" default:"apa"`

	// S3-Ziel für Datenbank-Backups; nur vom Backup-Kommando benötigt
	BackupS3Key    string `envconfig:"BACKUP_S3_KEY"`
	BackupS3Secret string `envconfig:"BACKUP_S3_SECRET"`
	BackupS3URL    string `envconfig:"BACKUP_S3_URL"`
	BackupS3Region string `envconfig:"BACKUP_S3_REGION"`
	BackupS3Bucket string `envconfig:"BACKUP_S3_BUCKET"`
	KeepBackups    int    `envconfig:"KEEP_BACKUPS" default:"4"`
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
