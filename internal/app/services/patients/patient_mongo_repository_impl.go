package patients

import (
	"context"
	"time"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewPatientMongoRepository(client *mongo.Client, dbName string, logger *zap.Logger) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionPatients),
		Log:        logger,
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	now := time.Now()
	patient.ID = primitive.NewObjectID().Hex()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	patient.Active = true

	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patientID string, update map[string]interface{}) (*models.Patient, error) {
	update["updatedAt"] = time.Now()

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, bson.M{"$set": update})
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return r.FindPatientByID(ctx, patientID)
}

func (r *PatientMongoRepository) SoftDeletePatient(ctx context.Context, patientID string) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{"active": false, "deletedAt": now, "updatedAt": now}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}

func (r *PatientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrPatientNotFound(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAllPatients(ctx context.Context) ([]models.Patient, error) {
	filter := bson.M{"active": bson.M{"$ne": false}}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		// An ordered query can fail when the backing index is missing;
		// an unordered result set is still a usable registry.
		r.Log.Warn("Ordered patient query failed, retrying unordered", zap.Error(err))
		cursor, err = r.Collection.Find(ctx, filter)
		if err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}
