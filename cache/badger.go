package cache

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/wythoff/flag"
)

// keyPrefix namespaces flag entries inside the database.
const keyPrefix = "flags/"

// BadgerConfig configures OpenBadger.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM; data is lost on Close.
	InMemory bool

	// SyncWrites makes every Save durable before it returns.
	SyncWrites bool

	// Logger receives badger's internal messages. Nil silences them.
	Logger *slog.Logger

	// Decode is applied to every Load.
	Decode []DecodeOption
}

// BadgerStore keeps entries in an embedded badger database under the key
// "flags/<name>", using the text encoding as value.
type BadgerStore struct {
	db   *badger.DB
	opts []DecodeOption
}

// badgerLogger adapts slog.Logger to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadger opens (creating if needed) the database described by cfg.
// The caller must Close the store.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("cache: badger path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("cache: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open badger database: %w", err)
	}

	return &BadgerStore{db: db, opts: cfg.Decode}, nil
}

// Load reads and decodes entry name. A missing key yields ErrNotFound.
func (s *BadgerStore) Load(name string, dim int) ([]flag.Flag, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("cache: load %s: %w", name, err)
	}

	return Decode(bytes.NewReader(data), dim, s.opts...)
}

// Save stores flags under name unless the key already exists, in which case
// ErrExists is returned and the stored value is kept.
func (s *BadgerStore) Save(name string, flags []flag.Flag) error {
	if err := validateName(name); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, flags); err != nil {
		return err
	}
	key := []byte(keyPrefix + name)

	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return ErrExists
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, buf.Bytes())
	})
	if errors.Is(err, ErrExists) {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	if err != nil {
		return fmt.Errorf("cache: save %s: %w", name, err)
	}

	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("cache: close badger database: %w", err)
	}

	return nil
}
