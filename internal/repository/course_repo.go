package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"brainbloom/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRepository owns all reads and writes against the courses collection.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourseByID(ctx context.Context, id string) (*model.Course, error)
	CreateCourse(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error)
	// DeleteCourse removes a course by id and reports how many documents
	// were deleted (0 or 1).
	DeleteCourse(ctx context.Context, id string) (int64, error)
	ListByInstructorEmail(ctx context.Context, email string) ([]model.Course, error)
	Search(ctx context.Context, text string) ([]model.Course, error)
	// UpdateStatus sets only the status field when status is non-nil.
	// A nil status leaves the document untouched. Returns nil when no
	// course matched.
	UpdateStatus(ctx context.Context, id string, status *string) (*model.Course, error)
}

type courseRepo struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *mongo.Database, logger zerolog.Logger) CourseRepository {
	return &courseRepo{
		coll:   db.Collection("courses"),
		logger: logger.With().Str("repository", "CourseRepository").Logger(),
	}
}

func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	return r.find(ctx, bson.M{})
}

func (r *courseRepo) GetCourseByID(ctx context.Context, id string) (*model.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var c model.Course
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) CreateCourse(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc["_id"] = res.InsertedID
	return doc, nil
}

func (r *courseRepo) DeleteCourse(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *courseRepo) ListByInstructorEmail(ctx context.Context, email string) ([]model.Course, error) {
	return r.find(ctx, bson.M{"instructor.email": email})
}

func (r *courseRepo) Search(ctx context.Context, text string) ([]model.Course, error) {
	if strings.TrimSpace(text) == "" {
		// An empty pattern would match every document.
		return []model.Course{}, nil
	}
	return r.find(ctx, searchFilter(text))
}

func (r *courseRepo) UpdateStatus(ctx context.Context, id string, status *string) (*model.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if status == nil {
		// Nothing to set; Mongo rejects an empty $set and the contract is
		// to leave every field untouched.
		var c model.Course
		if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return &c, nil
	}

	update := bson.M{"$set": bson.M{"status": *status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c model.Course
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	r.logger.Debug().Str("course_id", id).Str("status", *status).Msg("Course status updated")
	return &c, nil
}

func (r *courseRepo) find(ctx context.Context, filter bson.M) ([]model.Course, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []model.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}

// searchFilter matches a course when the text is a case-insensitive
// pattern of its category or instructor name. Numeric text additionally
// matches courses rated at least that number.
func searchFilter(text string) bson.M {
	or := bson.A{
		bson.M{"category": bson.M{"$regex": text, "$options": "i"}},
		bson.M{"instructor.name": bson.M{"$regex": text, "$options": "i"}},
	}
	if minRating, err := strconv.ParseFloat(text, 64); err == nil {
		or = append(or, bson.M{"rating": bson.M{"$gte": minRating}})
	}
	return bson.M{"$or": or}
}
