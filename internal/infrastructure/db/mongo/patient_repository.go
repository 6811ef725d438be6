package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

const patientsCollection = "pacientes"

type MongoPatientRepository struct {
	db     *mongo.Database
	coll   *mongo.Collection
	tutors *MongoTutorRepository
}

func NewPatientRepository(db *mongo.Database, tutors *MongoTutorRepository) *MongoPatientRepository {
	return &MongoPatientRepository{db: db, coll: db.Collection(patientsCollection), tutors: tutors}
}

type mongoPatient struct {
	ID         int64  `bson:"_id"`
	Name       string `bson:"nombre"`
	Species    string `bson:"especie,omitempty"`
	Breed      string `bson:"raza,omitempty"`
	Age        int    `bson:"edad,omitempty"`
	Sterilized bool   `bson:"esterilizado"`
	Sex        string `bson:"sexo,omitempty"`
	TutorID    int64  `bson:"tutor_id"`
	CreatedAt  int64  `bson:"created_at"`
	UpdatedAt  int64  `bson:"updated_at"`
}

func toMongoPatient(p *domain.Patient) mongoPatient {
	return mongoPatient{
		ID:         p.ID,
		Name:       p.Name,
		Species:    p.Species,
		Breed:      p.Breed,
		Age:        p.Age,
		Sterilized: p.Sterilized,
		Sex:        p.Sex,
		TutorID:    p.TutorID,
		CreatedAt:  p.CreatedAt.Unix(),
		UpdatedAt:  p.UpdatedAt.Unix(),
	}
}

func (mp mongoPatient) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:         mp.ID,
		Name:       mp.Name,
		Species:    mp.Species,
		Breed:      mp.Breed,
		Age:        mp.Age,
		Sterilized: mp.Sterilized,
		Sex:        mp.Sex,
		TutorID:    mp.TutorID,
		CreatedAt:  unixToTime(mp.CreatedAt),
		UpdatedAt:  unixToTime(mp.UpdatedAt),
	}
}

func (r *MongoPatientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	id, err := nextID(ctx, r.db, patientsCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoPatient(patient)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	created := *patient
	created.ID = id
	return &created, nil
}

func (r *MongoPatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return r.withTutor(ctx, mp.toDomain())
}

func (r *MongoPatientRepository) FindAll(ctx context.Context) ([]domain.Patient, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPatientRepository) FindByTutor(ctx context.Context, tutorID int64) ([]domain.Patient, error) {
	return r.find(ctx, bson.M{"tutor_id": tutorID})
}

func (r *MongoPatientRepository) find(ctx context.Context, filter bson.M) ([]domain.Patient, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cur.Close(ctx)

	patients := []domain.Patient{}
	for cur.Next(ctx) {
		var mp mongoPatient
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		p, err := r.withTutor(ctx, mp.toDomain())
		if err != nil {
			return nil, err
		}
		patients = append(patients, *p)
	}
	return patients, cur.Err()
}

// withTutor embeds the owning tutor. A dangling reference leaves Tutor nil
// instead of failing the read.
func (r *MongoPatientRepository) withTutor(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	tutor, err := r.tutors.FindByID(ctx, p.TutorID)
	if err != nil {
		if err == domain.ErrTutorNotFound {
			return p, nil
		}
		return nil, err
	}
	p.Tutor = tutor
	return p, nil
}

func (r *MongoPatientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": patient.ID}, toMongoPatient(patient))
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *MongoPatientRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}
