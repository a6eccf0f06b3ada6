package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore_FindAvailableDoctors(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes mixed experience encodings", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.doctors", mtest.FirstBatch,
			bson.D{{Key: "userId", Value: oid}, {Key: "degree", Value: "MBBS"}, {Key: "experience", Value: int32(7)}},
			bson.D{{Key: "userId", Value: "u-2"}, {Key: "degree", Value: "MD"}, {Key: "experience", Value: 12.0}},
			bson.D{{Key: "userId", Value: "u-3"}, {Key: "experience", Value: "3"}},
		))

		s := NewMongoStore(mt.DB)
		doctors, err := s.FindAvailableDoctors(context.Background(), "Cardiologist", 5)
		require.NoError(mt, err)
		require.Len(mt, doctors, 3)

		assert.Equal(mt, DoctorProfile{UserID: oid.Hex(), Degree: "MBBS", Experience: 7}, doctors[0])
		assert.Equal(mt, DoctorProfile{UserID: "u-2", Degree: "MD", Experience: 12}, doctors[1])
		assert.Equal(mt, DoctorProfile{UserID: "u-3", Experience: 3}, doctors[2])
	})

	mt.Run("empty result", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.doctors", mtest.FirstBatch))

		doctors, err := NewMongoStore(mt.DB).FindAvailableDoctors(context.Background(), "Dermatologist", 5)
		require.NoError(mt, err)
		assert.Empty(mt, doctors)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))

		_, err := NewMongoStore(mt.DB).FindAvailableDoctors(context.Background(), "Cardiologist", 5)
		assert.Error(mt, err)
	})
}

func TestMongoStore_FindUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "firstName", Value: "Asha"},
			{Key: "lastName", Value: "Rao"},
			{Key: "address", Value: bson.D{{Key: "city", Value: "Pune"}}},
		}))

		u, err := NewMongoStore(mt.DB).FindUser(context.Background(), oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, &UserProfile{ID: oid.Hex(), FirstName: "Asha", LastName: "Rao", City: "Pune"}, u)
	})

	mt.Run("missing address", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-9"},
			{Key: "firstName", Value: "Lee"},
		}))

		u, err := NewMongoStore(mt.DB).FindUser(context.Background(), "u-9")
		require.NoError(mt, err)
		assert.Equal(mt, "u-9", u.ID)
		assert.Empty(mt, u.City)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		_, err := NewMongoStore(mt.DB).FindUser(context.Background(), "nobody")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestConnectMongo_RejectsBadInput(t *testing.T) {
	_, _, err := ConnectMongo(context.Background(), "", "")
	assert.Error(t, err)

	_, _, err = ConnectMongo(context.Background(), "mongodb://localhost:27017", "")
	assert.ErrorContains(t, err, "database name")

	_, _, err = ConnectMongo(context.Background(), "http://not-mongo", "db")
	assert.Error(t, err)
}
