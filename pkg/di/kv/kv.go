package kv_di

import (
	"context"

	"github.com/Ruhan116/CLIR/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context) (*kvdb.KVDB, error) {
	viper.SetDefault("DOC_STORE_PATH", "docs_store.db")

	db, err := bolt.Open(viper.GetString("DOC_STORE_PATH"), 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(kvdb.BBOLTDB_BUCKET))
		return err
	})
	if err != nil {
		return nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		return nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return bboltKV, nil
}
