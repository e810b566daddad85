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

// GradeRepository persists grade records in the grades collection.
type GradeRepository struct {
	coll *mongo.Collection
}

func NewGradeRepository(db *mongo.Database) *GradeRepository {
	return &GradeRepository{coll: db.Collection(gradeCollection)}
}

type mongoGrade struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID string             `bson:"student_id"`
	CourseID  string             `bson:"course_id"`
	Score     float64            `bson:"score"`
	Term      string             `bson:"term"`
	EvalType  string             `bson:"eval_type"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *GradeRepository) Create(ctx context.Context, g *domain.Grade) (*domain.Grade, error) {
	res, err := r.coll.InsertOne(ctx, toMongoGrade(g))
	if err != nil {
		return nil, fmt.Errorf("insert grade: %w", err)
	}

	created := *g
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *GradeRepository) FindByID(ctx context.Context, id string) (*domain.Grade, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGradeNotFound
	}

	var mg mongoGrade
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGradeNotFound
		}
		return nil, fmt.Errorf("find grade: %w", err)
	}
	return fromMongoGrade(&mg), nil
}

func (r *GradeRepository) List(ctx context.Context) ([]*domain.Grade, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	defer cur.Close(ctx)

	grades := make([]*domain.Grade, 0)
	for cur.Next(ctx) {
		var mg mongoGrade
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode grade: %w", err)
		}
		grades = append(grades, fromMongoGrade(&mg))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

func (r *GradeRepository) Update(ctx context.Context, g *domain.Grade) (*domain.Grade, error) {
	oid, err := primitive.ObjectIDFromHex(g.ID)
	if err != nil {
		return nil, domain.ErrGradeNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoGrade(g))
	if err != nil {
		return nil, fmt.Errorf("update grade: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGradeNotFound
	}
	return g, nil
}

func (r *GradeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGradeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGradeNotFound
	}
	return nil
}

func toMongoGrade(g *domain.Grade) mongoGrade {
	return mongoGrade{
		StudentID: g.StudentID,
		CourseID:  g.CourseID,
		Score:     g.Score,
		Term:      g.Term,
		EvalType:  string(g.EvalType),
		Notes:     g.Notes,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func fromMongoGrade(mg *mongoGrade) *domain.Grade {
	return &domain.Grade{
		ID:        mg.ID.Hex(),
		StudentID: mg.StudentID,
		CourseID:  mg.CourseID,
		Score:     mg.Score,
		Term:      mg.Term,
		EvalType:  domain.EvalType(mg.EvalType),
		Notes:     mg.Notes,
		CreatedAt: mg.CreatedAt,
		UpdatedAt: mg.UpdatedAt,
	}
}
