package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"log"
	"time"

	"ehds-lens/config"
	"ehds-lens/dataset"
	"ehds-lens/storage"
	"ehds-lens/store"
)

func main() {
	log.Println("Starte Backup-Prozess...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fehler beim Laden der Konfiguration: %v", err)
	}
	if cfg.BackupS3Bucket == "" || cfg.BackupS3URL == "" {
		log.Fatal("Backup-Ziel unvollständig: BACKUP_S3_BUCKET und BACKUP_S3_URL setzen")
	}

	// 1. Datenbank laden und als JSON exportieren
	db, err := loadDatabase(cfg)
	if err != nil {
		log.Fatalf("Fehler beim Laden der Datenbank: %v", err)
	}
	dump, err := createDump(db)
	if err != nil {
		log.Fatalf("Fehler beim Erstellen des Dumps: %v", err)
	}

	// 2. S3-Client erstellen
	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		log.Fatalf("Fehler beim Erstellen des S3-Clients: %v", err)
	}

	// 3. Backup nach S3 hochladen
	fileName := fmt.Sprintf("backup-%s.json.gz", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	link, err := storage.UploadSnapshot(s3Client, cfg.BackupS3Bucket, fileName, dump, cfg)
	if err != nil {
		log.Fatalf("Fehler beim Hochladen nach S3: %v", err)
	}
	log.Printf("Backup erfolgreich hochgeladen: %s", link)

	// 4. Alte Backups rotieren
	deleted, err := storage.RotateSnapshots(s3Client, cfg.BackupS3Bucket, cfg.KeepBackups)
	if err != nil {
		log.Fatalf("Fehler bei der Rotation alter Backups: %v", err)
	}
	for _, key := range deleted {
		log.Printf("Altes Backup gelöscht: %s", key)
	}

	log.Println("Backup-Prozess erfolgreich abgeschlossen.")
}

func loadDatabase(cfg *config.Config) (*store.Database, error) {
	if cfg.DatabasePath == "" {
		return dataset.Studies()
	}
	db := store.New()
	if err := db.ReadJSON(cfg.DatabasePath); err != nil {
		return nil, err
	}
	return db, nil
}

func createDump(db *store.Database) ([]byte, error) {
	data, err := db.ToJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
