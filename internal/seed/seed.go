// Package seed fills a registry with generated doctors, patients and
// appointments for demos.
package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/hackgods/hospital-management/internal/hospital"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var conditions = []string{
	"Flu",
	"Checkup",
	"Asthma",
	"Hypertension",
	"Migraine",
	"Fracture",
	"Allergy",
	"Diabetes",
	"Bronchitis",
	"Vaccination",
}

type Options struct {
	Doctors  int
	Patients int
	// MaxRecords bounds the medical history generated per patient.
	MaxRecords int
}

type Summary struct {
	Doctors      []uuid.UUID
	Patients     []uuid.UUID
	Appointments []uuid.UUID
}

// Populate adds doctors and patients to sys and books one appointment per
// patient with a random doctor. Every appointment is attached to its doctor,
// and some are cancelled or completed.
func Populate(f *gofakeit.Faker, sys *hospital.System, opts Options) (Summary, error) {
	var sum Summary
	if opts.MaxRecords <= 0 {
		opts.MaxRecords = 3
	}

	for i := 0; i < opts.Doctors; i++ {
		spec := specialties[f.Number(0, len(specialties)-1)]
		id, err := sys.AddDoctor(hospital.NewDoctor(f.Name(), spec))
		if err != nil {
			return sum, fmt.Errorf("seed doctor: %w", err)
		}
		sum.Doctors = append(sum.Doctors, id)
	}

	for i := 0; i < opts.Patients; i++ {
		p := hospital.NewPatient(f.FirstName())
		records := f.Number(1, opts.MaxRecords)
		for r := 0; r < records; r++ {
			p.AddMedicalRecord(f.RandomString(conditions))
		}
		id, err := sys.AddPatient(p)
		if err != nil {
			return sum, fmt.Errorf("seed patient: %w", err)
		}
		sum.Patients = append(sum.Patients, id)
	}

	if len(sum.Doctors) == 0 {
		return sum, nil
	}

	for _, patientID := range sum.Patients {
		doctorID := sum.Doctors[f.Number(0, len(sum.Doctors)-1)]
		date := hospital.NewDate(f.Number(1, 28), f.Number(1, 12), f.Number(2024, 2026))

		appt, err := sys.ScheduleAppointment(doctorID, patientID, date)
		if err != nil {
			return sum, fmt.Errorf("seed appointment: %w", err)
		}
		if err := sys.AttachAppointment(doctorID, appt.ID()); err != nil {
			return sum, fmt.Errorf("seed appointment: %w", err)
		}

		switch f.Number(0, 2) {
		case 1:
			appt.Cancel()
		case 2:
			appt.Complete()
		}
		sum.Appointments = append(sum.Appointments, appt.ID())
	}

	return sum, nil
}
