package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

const doctorsCollection = "doctores"

type MongoDoctorRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *MongoDoctorRepository {
	return &MongoDoctorRepository{db: db, coll: db.Collection(doctorsCollection)}
}

type mongoDoctor struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"nombre"`
	LastName  string `bson:"apellido"`
	Specialty string `bson:"especialidad,omitempty"`
	Email     string `bson:"email"`
	Phone     string `bson:"telefono,omitempty"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func toMongoDoctor(d *domain.Doctor) mongoDoctor {
	return mongoDoctor{
		ID:        d.ID,
		Name:      d.Name,
		LastName:  d.LastName,
		Specialty: d.Specialty,
		Email:     d.Email,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt.Unix(),
		UpdatedAt: d.UpdatedAt.Unix(),
	}
}

func (md mongoDoctor) toDomain() *domain.Doctor {
	return &domain.Doctor{
		ID:        md.ID,
		Name:      md.Name,
		LastName:  md.LastName,
		Specialty: md.Specialty,
		Email:     md.Email,
		Phone:     md.Phone,
		CreatedAt: unixToTime(md.CreatedAt),
		UpdatedAt: unixToTime(md.UpdatedAt),
	}
}

func (r *MongoDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	id, err := nextID(ctx, r.db, doctorsCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoDoctor(doctor)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}

	created := *doctor
	created.ID = id
	return &created, nil
}

func (r *MongoDoctorRepository) FindByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	var md mongoDoctor
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDoctorRepository) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cur.Close(ctx)

	doctors := []domain.Doctor{}
	for cur.Next(ctx) {
		var md mongoDoctor
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		doctors = append(doctors, *md.toDomain())
	}
	return doctors, cur.Err()
}

func (r *MongoDoctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doctor.ID}, toMongoDoctor(doctor))
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

func (r *MongoDoctorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}
