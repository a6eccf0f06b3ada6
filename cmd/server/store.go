package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"medical-report-assistant/internal/config"
	"medical-report-assistant/internal/store"
)

// openStore returns the configured doctor store and a func releasing it.
// When the backend cannot be reached the store is nil and doctor lookups
// return nothing.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func()) {
	noop := func() {}

	switch cfg.DoctorStore {
	case config.StoreMemory:
		log.Info("using in-memory doctor store")
		return store.NewMemoryStore(), noop

	case config.StoreFirestore:
		client, err := store.NewFirestoreClient(ctx, cfg.FirestoreProject, cfg.FirestoreCredentials)
		if err != nil {
			log.WithError(err).Warn("firestore unavailable, running with doctor lookup disabled")
			return nil, noop
		}
		log.WithField("project", cfg.FirestoreProject).Info("firestore connection ready")
		return store.NewFirestoreStore(client), func() {
			if err := client.Close(); err != nil {
				log.WithError(err).Warn("firestore close failed")
			}
		}

	default:
		client, db, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.WithError(err).Warn("mongodb unavailable, running with doctor lookup disabled")
			return nil, noop
		}
		log.WithField("database", db.Name()).Info("mongodb connection successful")
		return store.NewMongoStore(db), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("mongodb disconnect failed")
			}
		}
	}
}
