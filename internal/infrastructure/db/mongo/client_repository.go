package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

const clientsCollection = "api_clients"

// ClientRepository stores API clients in MongoDB. It satisfies
// ports.CredentialStore so serve can use it in place of API_CLIENTS.
type ClientRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection), now: time.Now}
}

type mongoClient struct {
	ClientID   string `bson:"client_id"`
	SecretHash string `bson:"secret_hash"`
	Role       string `bson:"role"`
	CreatedAt  int64  `bson:"created_at"`
	UpdatedAt  int64  `bson:"updated_at"`
}

func (r *ClientRepository) FindClient(ctx context.Context, clientID string) (*domain.Client, error) {
	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	return &domain.Client{
		ID:         mc.ClientID,
		SecretHash: mc.SecretHash,
		Role:       mc.Role,
	}, nil
}

// PutClient creates the client or replaces its hash and role. It reports
// whether a new document was inserted.
func (r *ClientRepository) PutClient(ctx context.Context, c domain.Client) (bool, error) {
	if c.ID == "" || c.SecretHash == "" {
		return false, errors.New("put client: id and secret hash are required")
	}
	if c.Role != domain.RoleAdmin && c.Role != domain.RoleClient {
		return false, fmt.Errorf("put client: unknown role %q", c.Role)
	}

	now := r.now().Unix()
	update := bson.M{
		"$set": bson.M{
			"secret_hash": c.SecretHash,
			"role":        c.Role,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"client_id": c.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("put client: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

// EnsureIndexes creates the unique client_id index.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure client index: %w", err)
	}
	return nil
}
