package store

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewFirestoreClient builds a client for project, using a service account
// file when credentials is set and application default credentials otherwise.
func NewFirestoreClient(ctx context.Context, project, credentials string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	client, err := firestore.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}

// FirestoreStore implements Store using Firestore documents keyed by user id.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) FindAvailableDoctors(ctx context.Context, specialization string, limit int64) ([]DoctorProfile, error) {
	docs, err := s.client.Collection(DoctorsCollection).
		Where("specialization", "==", specialization).
		Where("isAvailable", "==", true).
		Select("userId", "degree", "experience").
		Limit(int(limit)).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query doctors: %w", err)
	}

	out := make([]DoctorProfile, 0, len(docs))
	for _, doc := range docs {
		data := doc.Data()
		out = append(out, DoctorProfile{
			UserID:     anyString(data["userId"]),
			Degree:     anyString(data["degree"]),
			Experience: anyInt(data["experience"]),
		})
	}
	return out, nil
}

func (s *FirestoreStore) FindUser(ctx context.Context, id string) (*UserProfile, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	doc, err := s.client.Collection(UsersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	data := doc.Data()
	u := &UserProfile{
		ID:        doc.Ref.ID,
		FirstName: anyString(data["firstName"]),
		LastName:  anyString(data["lastName"]),
	}
	if addr, ok := data["address"].(map[string]interface{}); ok {
		u.City = anyString(addr["city"])
	}
	return u, nil
}

func anyString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case *firestore.DocumentRef:
		return t.ID
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func anyInt(v interface{}) int {
	switch t := v.(type) {
	case int64:
		return int(t)
	case int:
		return t
	case float64:
		return int(math.Round(t))
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}
