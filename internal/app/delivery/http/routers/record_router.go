package routers

import (
	"healthai-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, recordController *controllers.RecordController) {
	router.Get("/{patientID}/records", recordController.GetPatientRecords)
	router.Get("/{patientID}/records/{category}", recordController.GetCategory)
	router.Get("/{patientID}/timeline", recordController.GetTimeline)
	router.Post("/{patientID}/medications", recordController.AddMedication)
	router.Post("/{patientID}/conditions", recordController.AddCondition)
}
