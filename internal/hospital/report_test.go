package hospital

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDisplayPatients(t *testing.T) {
	sys := NewSystem(nil)
	if _, err := sys.AddDoctor(NewDoctor("John Doe", "Cardiologist")); err != nil {
		t.Fatal(err)
	}
	p := NewPatient("Alice")
	p.AddMedicalRecord("Flu")
	if _, err := sys.AddPatient(p); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := sys.DisplayPatients(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Patients in the system:\n" +
		"Name: Alice\n" +
		"Medical History:\n" +
		"- Flu\n" +
		"---------------------\n"
	if buf.String() != want {
		t.Fatalf("output mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDisplayPatientsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSystem(nil).DisplayPatients(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Patients in the system:\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestDisplayDoctorAppointmentsEmpty(t *testing.T) {
	sys := NewSystem(nil)
	id, _ := sys.AddDoctor(NewDoctor("John Doe", "Cardiologist"))
	d, _ := sys.Doctor(id)

	var buf bytes.Buffer
	if err := sys.DisplayDoctorAppointments(&buf, d); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Appointments for Dr. John Doe:\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestDisplayDoctorsAndAppointments(t *testing.T) {
	sys := NewSystem(nil)
	johnID, _ := sys.AddDoctor(NewDoctor("John Doe", "Cardiologist"))
	_, _ = sys.AddDoctor(NewDoctor("Jane Smith", "Pediatrician"))
	aliceID, _ := sys.AddPatient(NewPatient("Alice"))

	first, _ := sys.ScheduleAppointment(johnID, aliceID, NewDate(3, 4, 2025))
	second, _ := sys.ScheduleAppointment(johnID, aliceID, NewDate(10, 12, 2025))
	_ = sys.AttachAppointment(johnID, first.ID())
	_ = sys.AttachAppointment(johnID, second.ID())
	_ = sys.CompleteAppointment(second.ID())

	var buf bytes.Buffer
	if err := sys.DisplayDoctorsAndAppointments(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Appointments for Dr. John Doe:\n" +
		"Doctor: John Doe\n" +
		"Patient: Alice\n" +
		"Date: 3/4/2025\n" +
		"Status: Scheduled\n" +
		"Doctor: John Doe\n" +
		"Patient: Alice\n" +
		"Date: 10/12/2025\n" +
		"Status: Completed\n" +
		"Appointments for Dr. Jane Smith:\n"
	if buf.String() != want {
		t.Fatalf("output mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDisplayAppointmentUnresolvedReference(t *testing.T) {
	sys := NewSystem(nil)
	patID, _ := sys.AddPatient(NewPatient("Alice"))
	a := NewAppointment(uuid.New(), patID, NewDate(1, 1, 2025))

	var buf bytes.Buffer
	err := sys.DisplayAppointment(&buf, a)
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("err = %v, want ErrDoctorNotFound", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial output written: %q", buf.String())
	}
}

func TestDisplayAppointmentNil(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSystem(nil).DisplayAppointment(&buf, nil); !errors.Is(err, ErrNilRecord) {
		t.Fatalf("err = %v, want ErrNilRecord", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output written: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDisplayPatientsWriteError(t *testing.T) {
	sys := NewSystem(nil)
	_, _ = sys.AddPatient(NewPatient("Alice"))

	if err := sys.DisplayPatients(failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}
