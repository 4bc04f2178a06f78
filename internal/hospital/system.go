package hospital

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNilRecord           = errors.New("record is nil")
)

// System is the hospital registry. Records live in stable slots keyed by ID,
// and insertion order is tracked separately for display.
type System struct {
	doctors      map[uuid.UUID]*Doctor
	patients     map[uuid.UUID]*Patient
	appointments map[uuid.UUID]*Appointment

	doctorOrder  []uuid.UUID
	patientOrder []uuid.UUID

	log logrus.FieldLogger
}

func NewSystem(logger logrus.FieldLogger) *System {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &System{
		doctors:      make(map[uuid.UUID]*Doctor),
		patients:     make(map[uuid.UUID]*Patient),
		appointments: make(map[uuid.UUID]*Appointment),
		log:          logger,
	}
}

// AddDoctor stores a copy of d under a fresh ID and returns that ID.
func (s *System) AddDoctor(d *Doctor) (uuid.UUID, error) {
	if d == nil {
		return uuid.Nil, ErrNilRecord
	}
	stored := *d
	stored.appointments = d.Appointments()
	stored.id = uuid.New()

	s.doctors[stored.id] = &stored
	s.doctorOrder = append(s.doctorOrder, stored.id)

	s.log.WithFields(logrus.Fields{
		"doctor_id":      stored.id,
		"name":           stored.Name,
		"specialization": stored.Specialization,
	}).Debug("doctor added")

	return stored.id, nil
}

// AddPatient stores a copy of p under a fresh ID and returns that ID.
func (s *System) AddPatient(p *Patient) (uuid.UUID, error) {
	if p == nil {
		return uuid.Nil, ErrNilRecord
	}
	stored := *p
	stored.medicalHistory = p.MedicalHistory()
	stored.id = uuid.New()

	s.patients[stored.id] = &stored
	s.patientOrder = append(s.patientOrder, stored.id)

	s.log.WithFields(logrus.Fields{
		"patient_id": stored.id,
		"name":       stored.Name,
		"records":    len(stored.medicalHistory),
	}).Debug("patient added")

	return stored.id, nil
}

// AddNewPatient runs the interactive add-patient workflow. It returns a nil
// patient and nil error when the user declines.
func (s *System) AddNewPatient(in DataInput) (*Patient, error) {
	if !in.AskForData() {
		s.log.Debug("new patient declined")
		return nil, nil
	}

	name, err := in.ReadName()
	if err != nil {
		return nil, fmt.Errorf("read patient name: %w", err)
	}

	p := NewPatient(name)
	recordErr := in.InputData(p)
	if recordErr != nil {
		s.log.WithError(recordErr).WithField("name", name).Warn("medical record not captured")
	}

	id, err := s.AddPatient(p)
	if err != nil {
		return nil, err
	}
	stored := s.patients[id]

	if recordErr != nil {
		return stored, fmt.Errorf("read medical record: %w", recordErr)
	}
	return stored, nil
}

// ScheduleAppointment creates a scheduled appointment. The doctor's own
// appointment list is left alone; use AttachAppointment for that.
func (s *System) ScheduleAppointment(doctorID, patientID uuid.UUID, date Date) (*Appointment, error) {
	if _, ok := s.doctors[doctorID]; !ok {
		return nil, fmt.Errorf("schedule appointment: %w", ErrDoctorNotFound)
	}
	if _, ok := s.patients[patientID]; !ok {
		return nil, fmt.Errorf("schedule appointment: %w", ErrPatientNotFound)
	}

	appt := NewAppointment(doctorID, patientID, date)
	appt.id = uuid.New()
	s.appointments[appt.id] = appt

	s.log.WithFields(logrus.Fields{
		"appointment_id": appt.id,
		"doctor_id":      doctorID,
		"patient_id":     patientID,
		"date":           date.String(),
	}).Debug("appointment scheduled")

	return appt, nil
}

func (s *System) AttachAppointment(doctorID, appointmentID uuid.UUID) error {
	d, ok := s.doctors[doctorID]
	if !ok {
		return fmt.Errorf("attach appointment: %w", ErrDoctorNotFound)
	}
	if _, ok := s.appointments[appointmentID]; !ok {
		return fmt.Errorf("attach appointment: %w", ErrAppointmentNotFound)
	}
	d.AddAppointment(appointmentID)
	return nil
}

func (s *System) CancelAppointment(id uuid.UUID) error {
	appt, err := s.Appointment(id)
	if err != nil {
		return err
	}
	appt.Cancel()
	return nil
}

func (s *System) CompleteAppointment(id uuid.UUID) error {
	appt, err := s.Appointment(id)
	if err != nil {
		return err
	}
	appt.Complete()
	return nil
}

func (s *System) Doctor(id uuid.UUID) (*Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

func (s *System) Patient(id uuid.UUID) (*Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func (s *System) Appointment(id uuid.UUID) (*Appointment, error) {
	a, ok := s.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

// Doctors lists doctors in insertion order.
func (s *System) Doctors() []*Doctor {
	out := make([]*Doctor, 0, len(s.doctorOrder))
	for _, id := range s.doctorOrder {
		out = append(out, s.doctors[id])
	}
	return out
}

// Patients lists patients in insertion order.
func (s *System) Patients() []*Patient {
	out := make([]*Patient, 0, len(s.patientOrder))
	for _, id := range s.patientOrder {
		out = append(out, s.patients[id])
	}
	return out
}

func (s *System) DoctorCount() int  { return len(s.doctorOrder) }
func (s *System) PatientCount() int { return len(s.patientOrder) }
