package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hackgods/hospital-management/internal/config"
	"github.com/hackgods/hospital-management/internal/console"
	"github.com/hackgods/hospital-management/internal/hospital"
	"github.com/hackgods/hospital-management/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := logging.New(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("logger setup error: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"env":     cfg.Env,
		"prompts": cfg.NewPatientPrompts,
	}).Info("hospital starting up")

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Error("report output failed")
	}
}

func run(cfg config.Config, logger logrus.FieldLogger, in io.Reader, out io.Writer) error {
	sys := hospital.NewSystem(logger)

	for _, d := range []*hospital.Doctor{
		hospital.NewDoctor("John Doe", "Cardiologist"),
		hospital.NewDoctor("Jane Smith", "Pediatrician"),
	} {
		if _, err := sys.AddDoctor(d); err != nil {
			return err
		}
	}

	input := console.New(in, out)
	for i := 0; i < cfg.NewPatientPrompts; i++ {
		p, err := sys.AddNewPatient(input)
		switch {
		case err != nil && errors.Is(err, console.ErrNoInput):
			logger.WithError(err).WithField("prompt", i+1).Warn("input ended early")
		case err != nil:
			logger.WithError(err).WithField("prompt", i+1).Error("add new patient failed")
		case p != nil:
			logger.WithFields(logrus.Fields{
				"patient_id": p.ID(),
				"name":       p.Name,
			}).Info("patient registered")
		}
	}

	if err := sys.DisplayDoctorsAndAppointments(out); err != nil {
		return err
	}
	return sys.DisplayPatients(out)
}
