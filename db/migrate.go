package db

import (
	"fmt"
	"log"

	"github.com/Wisley56/Apontamento-de-Horas/holidays"
	"github.com/Wisley56/Apontamento-de-Horas/models"
)

func Migrate() {
	if DB == nil {
		Init()
	}

	err := DB.AutoMigrate(
		&models.State{},
		&models.Holiday{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedStates()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedStates inserts the 27 federative units if they are not there yet. The
// states endpoint serves straight from this table.
func seedStates() {
	for code, name := range holidays.StateNames {
		var existing models.State
		if DB.Where("code = ?", code).First(&existing).RowsAffected == 0 {
			DB.Create(&models.State{Code: code, Name: name})
		}
	}
}
