package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/pbrandao-dev/bookshelf-api/internal/models"
)

// bcrypt work factor for stored password hashes.
const passwordCost = 12

// UserServiceProvider defines the interface for user directory services.
type UserServiceProvider interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

// UserService provides business logic for user accounts, backed by a
// MongoDB collection with unique indexes on username and email.
type UserService struct {
	users *mongo.Collection
}

// NewUserService creates a new UserService.
func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// Register creates a new user account, hashing the password. It fails
// with ErrDuplicateUser when the username or the email is already taken.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	err := s.users.FindOne(ctx, bson.M{"$or": []bson.M{
		{"email": email},
		{"username": username},
	}}).Err()
	if err == nil {
		return models.User{}, ErrDuplicateUser
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		// Two concurrent registrations can both pass the probe above;
		// the unique index settles the race.
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown email and wrong
// password both report ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// GetByID retrieves a single user by their id.
func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
