package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edugestion/school-records/internal/core/domain"
)

// StudentRepository persists student records in the students collection.
type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentCollection)}
}

type mongoStudent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	BirthDate    string             `bson:"birth_date"`
	EnrollmentID string             `bson:"enrollment_id"`
	Phone        string             `bson:"phone,omitempty"`
	Address      string             `bson:"address,omitempty"`
	Active       bool               `bson:"active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	res, err := r.coll.InsertOne(ctx, toMongoStudent(s))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStudentExists
		}
		return nil, fmt.Errorf("insert student: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	var ms mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return fromMongoStudent(&ms), nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	students := make([]*domain.Student, 0)
	for cur.Next(ctx) {
		var ms mongoStudent
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, fromMongoStudent(&ms))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	doc := toMongoStudent(s)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStudentExists
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStudentNotFound
	}
	return s, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func toMongoStudent(s *domain.Student) mongoStudent {
	return mongoStudent{
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		BirthDate:    s.BirthDate,
		EnrollmentID: s.EnrollmentID,
		Phone:        s.Phone,
		Address:      s.Address,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func fromMongoStudent(ms *mongoStudent) *domain.Student {
	return &domain.Student{
		ID:           ms.ID.Hex(),
		FirstName:    ms.FirstName,
		LastName:     ms.LastName,
		Email:        ms.Email,
		BirthDate:    ms.BirthDate,
		EnrollmentID: ms.EnrollmentID,
		Phone:        ms.Phone,
		Address:      ms.Address,
		Active:       ms.Active,
		CreatedAt:    ms.CreatedAt,
		UpdatedAt:    ms.UpdatedAt,
	}
}
