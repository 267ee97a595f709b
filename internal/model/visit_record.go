package model

import "fmt"

// TimeLayout is the timestamp format carried by every visit record.
const TimeLayout = "01/02/2006:15:04"

// VisitRecord captures one visit: when the patient registered, what they
// complained of, and their body temperature in Celsius.
type VisitRecord struct {
	RegisteredAt   string  `json:"registered_at"`
	ChiefComplaint string  `json:"chief_complaint"`
	BodyTemp       float64 `json:"body_temp"`
}

func NewVisitRecord(registeredAt, chiefComplaint string, bodyTemp float64) *VisitRecord {
	return &VisitRecord{
		RegisteredAt:   registeredAt,
		ChiefComplaint: chiefComplaint,
		BodyTemp:       bodyTemp,
	}
}

// BodyTempDisplay renders the temperature rounded to two decimal places.
func (v *VisitRecord) BodyTempDisplay() string {
	return fmt.Sprintf("%.2f", v.BodyTemp)
}

func (v *VisitRecord) String() string {
	return fmt.Sprintf("VisitRecord:\n Registration: %s, Symptoms: %s, Body Temperature (in Celsius): %s\n",
		v.RegisteredAt, v.ChiefComplaint, v.BodyTempDisplay())
}
