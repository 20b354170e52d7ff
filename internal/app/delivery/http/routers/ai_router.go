package routers

import (
	"healthai-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAIRoutes(router chi.Router, aiController *controllers.AIController) {
	router.Post("/{patientID}/ai/summary", aiController.GenerateSummary)
	router.Post("/{patientID}/ai/chat", aiController.Chat)
	router.Delete("/{patientID}/ai/chat/{sessionID}", aiController.ClearChat)
}
