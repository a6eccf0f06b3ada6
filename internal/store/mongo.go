package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	connectTimeout = 5 * time.Second
	socketTimeout  = 6 * time.Second
)

// ConnectMongo dials uri and pings the primary. The database name comes
// from the URI path, falling back to database.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, nil, errors.New("MONGO_URI is not set")
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid mongo uri: %w", err)
	}
	name := cs.Database
	if name == "" {
		name = database
	}
	if name == "" {
		return nil, nil, errors.New("mongo database name missing from MONGO_URI and MONGO_DATABASE")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(name), nil
}

// MongoStore implements Store over the doctors and users collections.
type MongoStore struct {
	doctors *mongo.Collection
	users   *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		doctors: db.Collection(DoctorsCollection),
		users:   db.Collection(UsersCollection),
	}
}

type doctorDoc struct {
	UserID     bson.RawValue `bson:"userId"`
	Degree     string        `bson:"degree"`
	Experience bson.RawValue `bson:"experience"`
}

type userDoc struct {
	ID        bson.RawValue `bson:"_id"`
	FirstName string        `bson:"firstName"`
	LastName  string        `bson:"lastName"`
	Address   struct {
		City string `bson:"city"`
	} `bson:"address"`
}

func (s *MongoStore) FindAvailableDoctors(ctx context.Context, specialization string, limit int64) ([]DoctorProfile, error) {
	filter := bson.M{"specialization": specialization, "isAvailable": true}
	opts := options.Find().
		SetProjection(bson.M{"userId": 1, "degree": 1, "experience": 1}).
		SetLimit(limit)

	cursor, err := s.doctors.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []doctorDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}

	out := make([]DoctorProfile, 0, len(docs))
	for _, d := range docs {
		out = append(out, DoctorProfile{
			UserID:     idString(d.UserID),
			Degree:     d.Degree,
			Experience: intValue(d.Experience),
		})
	}
	return out, nil
}

func (s *MongoStore) FindUser(ctx context.Context, id string) (*UserProfile, error) {
	filter := bson.M{"_id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	opts := options.FindOne().SetProjection(bson.M{"firstName": 1, "lastName": 1, "address.city": 1})

	var u userDoc
	err := s.users.FindOne(ctx, filter, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &UserProfile{
		ID:        idString(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		City:      u.Address.City,
	}, nil
}

func idString(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeInt32, bson.TypeInt64, bson.TypeDouble:
		return strconv.Itoa(intValue(v))
	default:
		return ""
	}
}

// intValue accepts the numeric encodings seen in the doctors collection.
func intValue(v bson.RawValue) int {
	switch v.Type {
	case bson.TypeInt32:
		return int(v.Int32())
	case bson.TypeInt64:
		return int(v.Int64())
	case bson.TypeDouble:
		return int(math.Round(v.Double()))
	case bson.TypeString:
		n, _ := strconv.Atoi(strings.TrimSpace(v.StringValue()))
		return n
	default:
		return 0
	}
}
