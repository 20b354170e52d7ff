package main

import (
	"context"
	"time"

	"healthai-service/internal/app/config"
	"healthai-service/internal/app/drivers/database"
	"healthai-service/internal/app/drivers/logger"
	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeds a development database with a couple of patients and a spread of
// clinical events so the timeline and AI endpoints have something to chew on.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := db.Collection(constvars.MongoCollectionPatients).CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count patients: %v", err)
	}
	if count > 0 {
		log.Infof("Database already has %d patients, skipping seed", count)
		return
	}

	now := time.Now()
	stamp := models.TimeModel{CreatedAt: now, UpdatedAt: now}

	alice := models.Patient{
		ID: primitive.NewObjectID().Hex(),
		Name: []models.HumanName{
			{Use: "official", Given: []string{"Alice"}, Family: "Hartono"},
		},
		Gender:    "female",
		BirthDate: "1988-04-12",
		Telecom: []models.ContactPoint{
			{System: "phone", Value: "+62-811-555-0101", Use: "mobile"},
		},
		Active:    true,
		TimeModel: stamp,
	}
	budi := models.Patient{
		ID: primitive.NewObjectID().Hex(),
		Name: []models.HumanName{
			{Use: "official", Given: []string{"Budi"}, Family: "Santoso"},
		},
		Gender:    "male",
		BirthDate: "1954-11-30",
		Telecom: []models.ContactPoint{
			{System: "phone", Value: "+62-811-555-0102", Use: "mobile"},
		},
		Active:    true,
		TimeModel: stamp,
	}

	insertAll(ctx, log, db, constvars.MongoCollectionPatients, alice, budi)

	insertAll(ctx, log, db, constvars.MongoCollectionEncounters,
		models.Encounter{
			ID:        primitive.NewObjectID().Hex(),
			PatientID: alice.ID,
			Type:      "Annual physical",
			Status:    "finished",
			Class:     "ambulatory",
			Period:    &models.Period{Start: now.AddDate(0, -2, 0).Format(time.RFC3339)},
			TimeModel: stamp,
		},
		models.Encounter{
			ID:        primitive.NewObjectID().Hex(),
			PatientID: budi.ID,
			Type:      "Emergency visit",
			Status:    "finished",
			Class:     "emergency",
			Period:    &models.Period{Start: now.AddDate(0, 0, -10).Format(time.RFC3339)},
			TimeModel: stamp,
		},
	)

	insertAll(ctx, log, db, constvars.MongoCollectionConditions,
		models.Condition{
			ID:             primitive.NewObjectID().Hex(),
			PatientID:      budi.ID,
			Display:        "Hypertension",
			ClinicalStatus: "active",
			Severity:       "moderate",
			OnsetDateTime:  now.AddDate(-3, 0, 0).Format(time.RFC3339),
			TimeModel:      stamp,
		},
	)

	insertAll(ctx, log, db, constvars.MongoCollectionMedications,
		models.Medication{
			ID:        primitive.NewObjectID().Hex(),
			PatientID: budi.ID,
			Display:   "Amlodipine",
			Dosage:    "5 mg",
			Frequency: "once daily",
			Status:     "active",
			AuthoredOn: now.AddDate(-3, 0, 7).Format(time.RFC3339),
			TimeModel:  stamp,
		},
	)

	insertAll(ctx, log, db, constvars.MongoCollectionAllergies,
		models.Allergy{
			ID:             primitive.NewObjectID().Hex(),
			PatientID:      alice.ID,
			Display:        "Penicillin",
			Type:           "allergy",
			Criticality:    "high",
			ClinicalStatus: "active",
			RecordedDate:   now.AddDate(-10, 0, 0).Format(time.RFC3339),
			TimeModel:      stamp,
		},
	)

	insertAll(ctx, log, db, constvars.MongoCollectionObservations,
		models.Observation{
			ID:                primitive.NewObjectID().Hex(),
			PatientID:         budi.ID,
			Display:           "Systolic blood pressure",
			Status:            "final",
			Category:          "vital-signs",
			ValueQuantity:     &models.ValueQuantity{Value: 142, Unit: "mmHg"},
			EffectiveDateTime: now.AddDate(0, 0, -10).Format(time.RFC3339),
			TimeModel:         stamp,
		},
	)

	insertAll(ctx, log, db, constvars.MongoCollectionProcedures,
		models.Procedure{
			ID:                primitive.NewObjectID().Hex(),
			PatientID:         alice.ID,
			Display:           "Appendectomy",
			Status:            "completed",
			PerformedDateTime: now.AddDate(-5, 0, 0).Format(time.RFC3339),
			TimeModel:         stamp,
		},
	)

	log.Info("Seed completed")
}

func insertAll(ctx context.Context, log *logrus.Logger, db *mongo.Database, collection string, docs ...interface{}) {
	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed %s: %v", collection, err)
	}
}
