package mongodb

import (
	"context"
	"time"

	"drivematch/internal/domain/entity"
	"drivematch/internal/domain/lifecycle"
	"drivematch/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// userDocument is the persistence model for a user account. Only the bcrypt
// hash and the SSN's last four digits are ever written.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PhoneNumber  string             `bson:"phone_number"`
	PasswordHash string             `bson:"password_hash"`
	SSNLast4     string             `bson:"ssn_last4"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// userRepository implements the repository.UserRepository interface using MongoDB.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository. It ensures the
// unique email index exists; the index, not the pre-insert lookup, is what
// actually guarantees email uniqueness.
func NewUserRepository(db *mongo.Database) (repository.UserRepository, error) {
	coll := db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure unique email index")
	}

	return &userRepository{coll: coll}, nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	var doc userDocument
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&doc), nil
}

// FindByEmailAndPhone retrieves a user matching both fields exactly.
func (repo *userRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.UserAccount, error) {
	var doc userDocument
	err := repo.coll.FindOne(ctx, bson.M{"email": email, "phone_number": phone}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email and phone")
	}

	return toUserDomain(&doc), nil
}

// Create persists a new user account, mapping the unique index violation to a
// domain-level error.
func (repo *userRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	doc := &userDocument{
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		PasswordHash: user.PasswordHash,
		SSNLast4:     user.SSNLast4,
		CreatedAt:    user.CreatedAt,
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to insert user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(doc *userDocument) *entity.UserAccount {
	return &entity.UserAccount{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PhoneNumber:  doc.PhoneNumber,
		PasswordHash: doc.PasswordHash,
		SSNLast4:     doc.SSNLast4,
		CreatedAt:    doc.CreatedAt,
	}
}
