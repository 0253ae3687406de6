package repository

import (
	"context"
	"errors"
	"fmt"

	"brainbloom/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when a caller-supplied identifier is not a
// valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid object id")

// UserRepository owns all reads and writes against the users collection.
//
// EnrollCourse and ToggleFavorite return a nil user when no document
// matched the given id.
type UserRepository interface {
	CreateUser(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	// EnrollCourse adds courseID to the user's enrolledCourses unless it
	// is already present. The bool reports the already-enrolled case.
	EnrollCourse(ctx context.Context, userID, courseID string) (*model.User, bool, error)
	// ToggleFavorite adds courseID to favCourses if absent and removes it
	// if present. The bool reports a removal.
	ToggleFavorite(ctx context.Context, userID, courseID string) (*model.User, bool, error)
}

type userRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepository {
	return &userRepo{coll: db.Collection("users")}
}

func (r *userRepo) CreateUser(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc["_id"] = res.InsertedID
	return doc, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	// If no users found, return an empty slice, not nil
	if len(users) == 0 {
		return []model.User{}, nil
	}
	return users, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var u model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EnrollCourse is a single atomic update: $addToSet never duplicates the
// entry, so two concurrent enrolls for the same pair cannot both append.
// The pre-image tells us whether this call actually added anything.
func (r *userRepo) EnrollCourse(ctx context.Context, userID, courseID string) (*model.User, bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidID, userID)
	}

	update := bson.M{"$addToSet": bson.M{"enrolledCourses": courseID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before model.User
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}

	enrolled, already := appendIfAbsent(before.EnrolledCourses, courseID)
	if already {
		return &before, true, nil
	}
	before.EnrolledCourses = enrolled
	return &before, false, nil
}

// ToggleFavorite flips membership of courseID in favCourses with one
// aggregation-pipeline update, so concurrent toggles cannot interleave a
// read with a write. The list is created lazily on first favorite.
func (r *userRepo) ToggleFavorite(ctx context.Context, userID, courseID string) (*model.User, bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidID, userID)
	}

	update := bson.A{bson.M{"$set": bson.M{"favCourses": bson.M{"$cond": bson.M{
		"if":   bson.M{"$in": bson.A{courseID, bson.M{"$ifNull": bson.A{"$favCourses", bson.A{}}}}},
		"then": bson.M{"$filter": bson.M{"input": "$favCourses", "as": "c", "cond": bson.M{"$ne": bson.A{"$$c", courseID}}}},
		"else": bson.M{"$concatArrays": bson.A{bson.M{"$ifNull": bson.A{"$favCourses", bson.A{}}}, bson.A{courseID}}},
	}}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before model.User
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}

	favs, removed := toggleCourse(before.FavCourses, courseID)
	before.FavCourses = favs
	return &before, removed, nil
}

// appendIfAbsent mirrors the $addToSet update applied to the stored
// document: courseID appears at most once, append order preserved.
func appendIfAbsent(list []string, courseID string) ([]string, bool) {
	for _, id := range list {
		if id == courseID {
			return list, true
		}
	}
	return append(list, courseID), false
}

// toggleCourse mirrors the conditional pipeline applied to favCourses:
// remove courseID if present, append it otherwise.
func toggleCourse(list []string, courseID string) ([]string, bool) {
	kept := make([]string, 0, len(list))
	removed := false
	for _, id := range list {
		if id == courseID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if removed {
		return kept, true
	}
	return append(kept, courseID), false
}
