package records

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

type RecordMongoRepository struct {
	Database *mongo.Database
	Log      *zap.Logger
}

func NewRecordMongoRepository(client *mongo.Client, dbName string, logger *zap.Logger) contracts.RecordRepository {
	return &RecordMongoRepository{
		Database: client.Database(dbName),
		Log:      logger,
	}
}

func patientFilter(patientID string) bson.M {
	return bson.M{"patientId": patientID}
}

// findWithOrderedFallback runs the query with the given sort and retries
// unordered when the store cannot serve it (missing composite index).
func (r *RecordMongoRepository) findWithOrderedFallback(ctx context.Context, collection string, patientID string, opts *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := r.Database.Collection(collection).Find(ctx, patientFilter(patientID), opts)
	if err == nil {
		return cursor, nil
	}
	r.Log.Warn("Ordered record query failed, retrying unordered",
		zap.String(constvars.LoggingCategoryKey, collection),
		zap.Error(err),
	)
	return r.Database.Collection(collection).Find(ctx, patientFilter(patientID))
}

func (r *RecordMongoRepository) FindEncountersByPatientID(ctx context.Context, patientID string) ([]models.Encounter, error) {
	cursor, err := r.Database.Collection(constvars.MongoCollectionEncounters).Find(ctx, patientFilter(patientID))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var encounters []models.Encounter
	if err := cursor.All(ctx, &encounters); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return encounters, nil
}

func (r *RecordMongoRepository) FindConditionsByPatientID(ctx context.Context, patientID string) ([]models.Condition, error) {
	cursor, err := r.Database.Collection(constvars.MongoCollectionConditions).Find(ctx, patientFilter(patientID))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var conditions []models.Condition
	if err := cursor.All(ctx, &conditions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return conditions, nil
}

func (r *RecordMongoRepository) FindMedicationsByPatientID(ctx context.Context, patientID string) ([]models.Medication, error) {
	cursor, err := r.Database.Collection(constvars.MongoCollectionMedications).Find(ctx, patientFilter(patientID))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}

func (r *RecordMongoRepository) FindProceduresByPatientID(ctx context.Context, patientID string) ([]models.Procedure, error) {
	opts := options.Find().SetSort(bson.D{{Key: "performedDateTime", Value: -1}})
	cursor, err := r.findWithOrderedFallback(ctx, constvars.MongoCollectionProcedures, patientID, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var procedures []models.Procedure
	if err := cursor.All(ctx, &procedures); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return procedures, nil
}

func (r *RecordMongoRepository) FindObservationsByPatientID(ctx context.Context, patientID string) ([]models.Observation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "effectiveDateTime", Value: -1}}).
		SetLimit(constvars.ObservationFetchLimit)
	cursor, err := r.findWithOrderedFallback(ctx, constvars.MongoCollectionObservations, patientID, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var observations []models.Observation
	if err := cursor.All(ctx, &observations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return observations, nil
}

func (r *RecordMongoRepository) FindAllergiesByPatientID(ctx context.Context, patientID string) ([]models.Allergy, error) {
	cursor, err := r.Database.Collection(constvars.MongoCollectionAllergies).Find(ctx, patientFilter(patientID))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var allergies []models.Allergy
	if err := cursor.All(ctx, &allergies); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return allergies, nil
}

func (r *RecordMongoRepository) InsertMedication(ctx context.Context, medication *models.Medication) (*models.Medication, error) {
	now := time.Now()
	medication.ID = primitive.NewObjectID().Hex()
	medication.CreatedAt = now
	medication.UpdatedAt = now

	_, err := r.Database.Collection(constvars.MongoCollectionMedications).InsertOne(ctx, medication)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return medication, nil
}

func (r *RecordMongoRepository) InsertCondition(ctx context.Context, condition *models.Condition) (*models.Condition, error) {
	now := time.Now()
	condition.ID = primitive.NewObjectID().Hex()
	condition.CreatedAt = now
	condition.UpdatedAt = now

	_, err := r.Database.Collection(constvars.MongoCollectionConditions).InsertOne(ctx, condition)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return condition, nil
}
