package services

import (
	"testing"

	"DoctorZ/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrescriptionItems(t *testing.T) {
	valid := []models.PrescriptionItem{
		{Medicine: "Paracetamol", Dosage: "500mg twice a day", NoOfDays: 5},
	}
	assert.NoError(t, validatePrescriptionItems(valid))

	assert.Error(t, validatePrescriptionItems(nil))
	assert.Error(t, validatePrescriptionItems([]models.PrescriptionItem{
		{Medicine: "", Dosage: "500mg", NoOfDays: 5},
	}))
	assert.Error(t, validatePrescriptionItems([]models.PrescriptionItem{
		{Medicine: "Paracetamol", Dosage: "", NoOfDays: 5},
	}))
	assert.Error(t, validatePrescriptionItems([]models.PrescriptionItem{
		{Medicine: "Paracetamol", Dosage: "500mg", NoOfDays: 0},
	}))
}
