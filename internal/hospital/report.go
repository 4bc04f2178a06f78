package hospital

import (
	"fmt"
	"io"
)

const patientSeparator = "---------------------"

// reportWriter keeps the first write error so callers can print freely and
// check once at the end.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

// DisplayAppointment writes the doctor, patient, date and status lines.
// Names are resolved through the registry before anything is written.
func (s *System) DisplayAppointment(w io.Writer, a *Appointment) error {
	if a == nil {
		return fmt.Errorf("display appointment: %w", ErrNilRecord)
	}
	d, err := s.Doctor(a.doctorID)
	if err != nil {
		return fmt.Errorf("display appointment %s: %w", a.id, err)
	}
	p, err := s.Patient(a.patientID)
	if err != nil {
		return fmt.Errorf("display appointment %s: %w", a.id, err)
	}

	rw := &reportWriter{w: w}
	rw.printf("Doctor: %s\n", d.Name)
	rw.printf("Patient: %s\n", p.Name)
	rw.printf("Date: %s\n", a.Date)
	rw.printf("Status: %s\n", a.Status)
	return rw.err
}

func (s *System) DisplayDoctorAppointments(w io.Writer, d *Doctor) error {
	if _, err := fmt.Fprintf(w, "Appointments for Dr. %s:\n", d.Name); err != nil {
		return err
	}
	for _, id := range d.appointments {
		a, err := s.Appointment(id)
		if err != nil {
			return fmt.Errorf("display appointments for %s: %w", d.Name, err)
		}
		if err := s.DisplayAppointment(w, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) DisplayDoctorsAndAppointments(w io.Writer) error {
	for _, d := range s.Doctors() {
		if err := s.DisplayDoctorAppointments(w, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) DisplayPatients(w io.Writer) error {
	rw := &reportWriter{w: w}
	rw.printf("Patients in the system:\n")
	for _, p := range s.Patients() {
		rw.printf("Name: %s\n", p.Name)
		rw.printf("Medical History:\n")
		for _, record := range p.medicalHistory {
			rw.printf("- %s\n", record)
		}
		rw.printf("%s\n", patientSeparator)
	}
	return rw.err
}
