package routers

import (
	"healthai-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.RegisterPatient)
	router.Get("/stats", patientController.GetPatientStats)
	router.Get("/{patientID}", patientController.GetPatient)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Delete("/{patientID}", patientController.DeletePatient)
}
