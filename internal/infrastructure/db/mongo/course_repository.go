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

// CourseRepository persists course records in the courses collection.
type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(courseCollection)}
}

type mongoCourse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Code        string             `bson:"code"`
	Description string             `bson:"description,omitempty"`
	Credits     int                `bson:"credits"`
	Instructor  string             `bson:"instructor"`
	Term        string             `bson:"term"`
	Capacity    int                `bson:"capacity"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	res, err := r.coll.InsertOne(ctx, toMongoCourse(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCourseExists
		}
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return fromMongoCourse(&mc), nil
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	courses := make([]*domain.Course, 0)
	for cur.Next(ctx) {
		var mc mongoCourse
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, fromMongoCourse(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoCourse(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCourseExists
		}
		return nil, fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCourseNotFound
	}
	return c, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func toMongoCourse(c *domain.Course) mongoCourse {
	return mongoCourse{
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Credits:     c.Credits,
		Instructor:  c.Instructor,
		Term:        c.Term,
		Capacity:    c.Capacity,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromMongoCourse(mc *mongoCourse) *domain.Course {
	return &domain.Course{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Code:        mc.Code,
		Description: mc.Description,
		Credits:     mc.Credits,
		Instructor:  mc.Instructor,
		Term:        mc.Term,
		Capacity:    mc.Capacity,
		Active:      mc.Active,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}
