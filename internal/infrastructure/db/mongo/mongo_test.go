package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func TestClientOptions_Defaults(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017"})

	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != defaultMaxPoolSize {
		t.Errorf("expected default pool size %d, got %v", defaultMaxPoolSize, opts.MaxPoolSize)
	}
	if opts.ReadPreference == nil || opts.ReadPreference.Mode() != readpref.PrimaryPreferredMode {
		t.Errorf("expected primaryPreferred reads, got %v", opts.ReadPreference)
	}
}

func TestClientOptions_PoolOverride(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017", MaxPoolSize: 8})

	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != 8 {
		t.Errorf("expected pool size 8, got %v", opts.MaxPoolSize)
	}
}
