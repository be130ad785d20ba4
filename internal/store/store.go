// Package store owns all MongoDB access: user lookups for the access
// layer, the todo and occupation collections, and the indexes that
// back them.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-app/lifeline-api/internal/models"
)

// ErrDuplicate is returned when an insert or upsert collides with a
// unique index (email or tokenIdentifier).
var ErrDuplicate = errors.New("record already exists")

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// EnsureIndexes creates the indexes the service depends on. The unique
// index on tokenIdentifier is what lets FindUserByTokenIdentifier
// assume at most one match.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	users := s.db.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tokenIdentifier", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("todos").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("occupations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// --- Users ---

// FindUserByTokenIdentifier resolves the user record for a verified
// identity. Returns (nil, nil) when no record matches.
func (s *Store) FindUserByTokenIdentifier(ctx context.Context, tokenIdentifier string) (*models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"tokenIdentifier": tokenIdentifier}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	_, err := s.db.Collection("users").InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// UpdateUserProfile applies the given fields to the user's record.
func (s *Store) UpdateUserProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	result, err := s.db.Collection("users").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteUser removes a user and everything hanging off it.
func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection("users").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	if _, err := s.db.Collection("todos").DeleteMany(ctx, bson.M{"userId": id}); err != nil {
		return err
	}
	_, err = s.db.Collection("occupations").DeleteMany(ctx, bson.M{"userId": id})
	return err
}

// --- Todos ---

func (s *Store) ListTodos(ctx context.Context, userID primitive.ObjectID) ([]models.Todo, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.db.Collection("todos").Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []models.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = make([]models.Todo, 0)
	}
	return todos, nil
}

func (s *Store) InsertTodo(ctx context.Context, todo *models.Todo) error {
	todo.CreatedAt = time.Now().UTC()
	_, err := s.db.Collection("todos").InsertOne(ctx, todo)
	return err
}

// SetTodoCompleted flips completion on a todo owned by userID. Returns
// mongo.ErrNoDocuments when the todo does not exist or belongs to
// someone else.
func (s *Store) SetTodoCompleted(ctx context.Context, id, userID primitive.ObjectID, completed bool) error {
	result, err := s.db.Collection("todos").UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) DeleteTodo(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := s.db.Collection("todos").DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// --- Occupations ---

// FindOccupationByUser returns (nil, nil) when the user has no
// occupation on file.
func (s *Store) FindOccupationByUser(ctx context.Context, userID primitive.ObjectID) (*models.Occupation, error) {
	var occ models.Occupation
	err := s.db.Collection("occupations").FindOne(ctx, bson.M{"userId": userID}).Decode(&occ)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &occ, nil
}

// UpsertOccupation creates or replaces the user's occupation. The
// unique index on userId keeps it to one per user even under
// concurrent upserts.
func (s *Store) UpsertOccupation(ctx context.Context, occ *models.Occupation) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.db.Collection("occupations").UpdateOne(ctx,
		bson.M{"userId": occ.UserID},
		bson.M{"$set": bson.M{"title": occ.Title, "years": occ.Years}},
		opts)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// --- Stats ---

// Counts holds collection totals for the admin dashboard.
type Counts struct {
	Users          int64 `json:"users"`
	Professionals  int64 `json:"professionals"`
	Todos          int64 `json:"todos"`
	CompletedTodos int64 `json:"completedTodos"`
	Occupations    int64 `json:"occupations"`
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	var err error
	if c.Users, err = s.db.Collection("users").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if c.Professionals, err = s.db.Collection("users").CountDocuments(ctx, bson.M{"accountType": models.AccountProfessional}); err != nil {
		return Counts{}, err
	}
	if c.Todos, err = s.db.Collection("todos").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if c.CompletedTodos, err = s.db.Collection("todos").CountDocuments(ctx, bson.M{"completed": true}); err != nil {
		return Counts{}, err
	}
	if c.Occupations, err = s.db.Collection("occupations").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	return c, nil
}
