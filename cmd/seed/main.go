package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/calorix/backend/config"
	"github.com/calorix/backend/internal/database"
	"github.com/calorix/backend/internal/models"
)

var activityLevels = []models.ActivityLevel{
	{Name: "Sedentary", Multiplier: 1.2},
	{Name: "Lightly Active", Multiplier: 1.375},
	{Name: "Moderately Active", Multiplier: 1.55},
	{Name: "Very Active", Multiplier: 1.725},
	{Name: "Extra Active", Multiplier: 1.9},
}

var goals = []models.Goal{
	{Name: "Lose Weight", Multiplier: 0.85},
	{Name: "Maintain Weight", Multiplier: 1.0},
	{Name: "Gain Weight", Multiplier: 1.15},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	if err := seed(db); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}
	logrus.Info("reference data seeded")
}

func seed(db *gorm.DB) error {
	for _, level := range activityLevels {
		if err := db.Where("name = ?", level.Name).FirstOrCreate(&level).Error; err != nil {
			return err
		}
	}
	for _, goal := range goals {
		if err := db.Where("name = ?", goal.Name).FirstOrCreate(&goal).Error; err != nil {
			return err
		}
	}
	return nil
}
