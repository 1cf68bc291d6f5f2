package domain

import (
	"strings"
	"time"
)

// Disposition values recognized by the reporting queries. Matching is
// exact after uppercasing; surrounding whitespace and synonyms are not
// normalized here because the source table already carries clean values.
const (
	DispositionScrap    = "SCRAP"
	DispositionRepaired = "REPAIRED"
)

// DefectRecord mirrors a row of the external quality.clean_quality_data
// table. The reporting backend only ever reads it.
type DefectRecord struct {
	ID              int64     `json:"id"`
	PartNumber      string    `json:"part_number"`
	SerialNumber    string    `json:"serial_number"`
	Date            time.Time `json:"date"`
	Shift           string    `json:"shift"`
	Disposition     string    `json:"disposition"`
	CodeDescription string    `json:"code_description"`
	Category        string    `json:"category"`
	Type            string    `json:"type"`
}

// IsScrap reports whether the record's disposition, uppercased, equals SCRAP.
func (r DefectRecord) IsScrap() bool {
	return strings.ToUpper(r.Disposition) == DispositionScrap
}

// IsRepaired reports whether the record's disposition, uppercased, equals REPAIRED.
func (r DefectRecord) IsRepaired() bool {
	return strings.ToUpper(r.Disposition) == DispositionRepaired
}
