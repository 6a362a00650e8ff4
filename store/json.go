package store

import (
	"encoding/json"
	"fmt"
	"os"

	"ehds-lens/models"
)

// document ist das JSON-Dateiformat: Metadaten plus Studienliste.
type document struct {
	Metadata Metadata       `json:"metadata"`
	Studies  []models.Study `json:"studies"`
}

// ToJSON serialisiert die Datenbank als eingerücktes JSON-Dokument.
// Das Dokument wird aus Kopien gebaut, damit parallele Mutationen das
// Marshalling nicht berühren.
func (d *Database) ToJSON() ([]byte, error) {
	d.mu.RLock()
	studies := make([]models.Study, len(d.studies))
	copy(studies, d.studies)
	doc := document{Metadata: d.meta, Studies: studies}
	d.mu.RUnlock()
	return json.MarshalIndent(doc, "", "  ")
}

// WriteJSON schreibt das JSON-Dokument in eine Datei.
// I/O-Fehler werden unverändert an den Aufrufer gereicht.
func (d *Database) WriteJSON(path string) error {
	data, err := d.ToJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON ersetzt den Bestand durch den Inhalt der JSON-Datei.
func (d *Database) ReadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return d.FromJSON(data)
}

// FromJSON ersetzt den Bestand durch das übergebene JSON-Dokument.
// Jede Studie durchläuft die Konstruktionsvalidierung. Fehlende
// Metadatenfelder behalten ihre deklarierten Standardwerte.
func (d *Database) FromJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse database json: %w", err)
	}

	fresh := New()
	if !doc.Metadata.Created.IsZero() {
		fresh.meta.Created = doc.Metadata.Created
	}
	if !doc.Metadata.Modified.IsZero() {
		fresh.meta.Modified = doc.Metadata.Modified
	}
	if doc.Metadata.Version != "" {
		fresh.meta.Version = doc.Metadata.Version
	}
	if doc.Metadata.Description != "" {
		fresh.meta.Description = doc.Metadata.Description
	}
	for _, s := range doc.Studies {
		if err := fresh.Add(s); err != nil {
			return err
		}
	}

	d.mu.Lock()
	d.studies = fresh.studies
	d.index = fresh.index
	d.meta = fresh.meta
	d.mu.Unlock()
	return nil
}
