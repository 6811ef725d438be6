package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

const tutorsCollection = "tutores"

type MongoTutorRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTutorRepository(db *mongo.Database) *MongoTutorRepository {
	return &MongoTutorRepository{db: db, coll: db.Collection(tutorsCollection)}
}

type mongoTutor struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"nombre"`
	LastName  string `bson:"apellido"`
	Email     string `bson:"email"`
	Phone     string `bson:"telefono,omitempty"`
	Address   string `bson:"direccion,omitempty"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func toMongoTutor(t *domain.Tutor) mongoTutor {
	return mongoTutor{
		ID:        t.ID,
		Name:      t.Name,
		LastName:  t.LastName,
		Email:     t.Email,
		Phone:     t.Phone,
		Address:   t.Address,
		CreatedAt: t.CreatedAt.Unix(),
		UpdatedAt: t.UpdatedAt.Unix(),
	}
}

func (mt mongoTutor) toDomain() *domain.Tutor {
	return &domain.Tutor{
		ID:        mt.ID,
		Name:      mt.Name,
		LastName:  mt.LastName,
		Email:     mt.Email,
		Phone:     mt.Phone,
		Address:   mt.Address,
		CreatedAt: unixToTime(mt.CreatedAt),
		UpdatedAt: unixToTime(mt.UpdatedAt),
	}
}

func (r *MongoTutorRepository) Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error) {
	id, err := nextID(ctx, r.db, tutorsCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoTutor(tutor)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTutorEmailTaken
		}
		return nil, fmt.Errorf("insert tutor: %w", err)
	}

	created := *tutor
	created.ID = id
	return &created, nil
}

func (r *MongoTutorRepository) FindByID(ctx context.Context, id int64) (*domain.Tutor, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoTutorRepository) FindByEmail(ctx context.Context, email string) (*domain.Tutor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoTutorRepository) findOne(ctx context.Context, filter bson.M) (*domain.Tutor, error) {
	var mt mongoTutor
	if err := r.coll.FindOne(ctx, filter).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("find tutor: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTutorRepository) FindAll(ctx context.Context) ([]domain.Tutor, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer cur.Close(ctx)

	tutors := []domain.Tutor{}
	for cur.Next(ctx) {
		var mt mongoTutor
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode tutor: %w", err)
		}
		tutors = append(tutors, *mt.toDomain())
	}
	return tutors, cur.Err()
}

func (r *MongoTutorRepository) Update(ctx context.Context, tutor *domain.Tutor) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": tutor.ID}, toMongoTutor(tutor))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTutorEmailTaken
		}
		return fmt.Errorf("update tutor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTutorNotFound
	}
	return nil
}

func (r *MongoTutorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tutor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTutorNotFound
	}
	return nil
}
