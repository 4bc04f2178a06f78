package hospital

import (
	"fmt"

	"github.com/google/uuid"
)

type AppointmentStatus int

const (
	StatusScheduled AppointmentStatus = iota
	StatusCancelled
	StatusCompleted
)

func (s AppointmentStatus) String() string {
	switch s {
	case StatusScheduled:
		return "Scheduled"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("AppointmentStatus(%d)", int(s))
	}
}

// Date is a plain day/month/year triple. Ranges are not checked.
type Date struct {
	day   int
	month int
	year  int
}

func NewDate(day, month, year int) Date {
	return Date{day: day, month: month, year: year}
}

func (d Date) Day() int   { return d.day }
func (d Date) Month() int { return d.month }
func (d Date) Year() int  { return d.year }

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.day, d.month, d.year)
}

// Appointment refers to its doctor and patient by ID; the registry owns both.
// IDs are read-only so a stored record always matches its registry slot.
type Appointment struct {
	id        uuid.UUID
	doctorID  uuid.UUID
	patientID uuid.UUID
	Date      Date
	Status    AppointmentStatus
}

func NewAppointment(doctorID, patientID uuid.UUID, date Date) *Appointment {
	return &Appointment{
		doctorID:  doctorID,
		patientID: patientID,
		Date:      date,
		Status:    StatusScheduled,
	}
}

// ID is uuid.Nil until the registry stores the appointment.
func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) DoctorID() uuid.UUID  { return a.doctorID }
func (a *Appointment) PatientID() uuid.UUID { return a.patientID }

// Cancel and Complete are unconditional; the last call wins.
func (a *Appointment) Cancel() {
	a.Status = StatusCancelled
}

func (a *Appointment) Complete() {
	a.Status = StatusCompleted
}

type Doctor struct {
	id             uuid.UUID
	Name           string
	Specialization string
	appointments   []uuid.UUID
}

func NewDoctor(name, specialization string) *Doctor {
	return &Doctor{Name: name, Specialization: specialization}
}

func (d *Doctor) ID() uuid.UUID { return d.id }

// AddAppointment appends without de-duplication.
func (d *Doctor) AddAppointment(appointmentID uuid.UUID) {
	d.appointments = append(d.appointments, appointmentID)
}

// Appointments returns the appointment IDs in insertion order.
func (d *Doctor) Appointments() []uuid.UUID {
	out := make([]uuid.UUID, len(d.appointments))
	copy(out, d.appointments)
	return out
}

type Patient struct {
	id             uuid.UUID
	Name           string
	medicalHistory []string
}

func NewPatient(name string) *Patient {
	return &Patient{Name: name}
}

func (p *Patient) ID() uuid.UUID { return p.id }

func (p *Patient) AddMedicalRecord(record string) {
	p.medicalHistory = append(p.medicalHistory, record)
}

// MedicalHistory returns a copy so callers cannot mutate the history.
func (p *Patient) MedicalHistory() []string {
	out := make([]string, len(p.medicalHistory))
	copy(out, p.medicalHistory)
	return out
}
