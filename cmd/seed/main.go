package main

import (
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"github.com/hackgods/hospital-management/internal/config"
	"github.com/hackgods/hospital-management/internal/hospital"
	"github.com/hackgods/hospital-management/internal/logging"
	"github.com/hackgods/hospital-management/internal/seed"
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
		"doctors":  cfg.SeedDoctors,
		"patients": cfg.SeedPatients,
		"seed":     cfg.SeedRandom,
	}).Info("seed starting")

	faker := gofakeit.New(uint64(cfg.SeedRandom))
	sys := hospital.NewSystem(logger)

	sum, err := seed.Populate(faker, sys, seed.Options{
		Doctors:  cfg.SeedDoctors,
		Patients: cfg.SeedPatients,
	})
	if err != nil {
		logger.WithError(err).Fatal("seed failed")
	}

	if err := sys.DisplayDoctorsAndAppointments(os.Stdout); err != nil {
		logger.WithError(err).Fatal("display appointments")
	}
	if err := sys.DisplayPatients(os.Stdout); err != nil {
		logger.WithError(err).Fatal("display patients")
	}

	logger.WithField("appointments", len(sum.Appointments)).Info("seed complete")
}
