package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"

	"github.com/go-theft-craft/tilefill/internal/world"
	"github.com/go-theft-craft/tilefill/internal/world/gen"
)

var chunkPrefix = []byte("chunk:")

func chunkKey(pos gen.ChunkPos) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d", pos.X, pos.Z))
}

// BadgerStore keeps overrides in BadgerDB, one key per chunk column.
// Values are zstd-compressed JSON lists of BlockOverride.
type BadgerStore struct {
	db  *badger.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
	log *slog.Logger
}

// NewBadgerStore opens (or creates) the database under dir/world.db.
func NewBadgerStore(dir string, log *slog.Logger) (*BadgerStore, error) {
	if log == nil {
		log = slog.Default()
	}
	opts := badger.DefaultOptions(filepath.Join(dir, "world.db"))
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &BadgerStore{db: db, enc: enc, dec: dec, log: log}, nil
}

// LoadWorld replaces the world's overrides with the stored ones.
func (s *BadgerStore) LoadWorld(w *world.World) error {
	overrides := make(map[world.BlockPos]int32)
	chunks := 0

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(chunkPrefix); it.ValidForPrefix(chunkPrefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				list, err := s.decode(val)
				if err != nil {
					return fmt.Errorf("chunk %s: %w", item.Key(), err)
				}
				toOverrideMap(list, overrides)
				return nil
			})
			if err != nil {
				return err
			}
			chunks++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load world overrides: %w", err)
	}

	w.LoadOverrides(overrides)
	s.log.Info("loaded world overrides", "count", len(overrides), "chunks", chunks)
	return nil
}

// SaveWorld writes one key per chunk that has overrides and deletes keys of
// chunks that no longer have any.
func (s *BadgerStore) SaveWorld(w *world.World) error {
	byChunk := make(map[gen.ChunkPos][]BlockOverride)
	w.ForEachOverride(func(pos world.BlockPos, stateID int32) {
		cp := gen.ChunkPos{X: pos.X >> 4, Z: pos.Z >> 4}
		byChunk[cp] = append(byChunk[cp], BlockOverride{X: pos.X, Y: pos.Y, Z: pos.Z, StateID: stateID})
	})

	fresh := make(map[string]bool, len(byChunk))
	for cp := range byChunk {
		fresh[string(chunkKey(cp))] = true
	}

	var stale [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(chunkPrefix); it.ValidForPrefix(chunkPrefix); it.Next() {
			if key := it.Item().KeyCopy(nil); !fresh[string(key)] {
				stale = append(stale, key)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan stored chunks: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("delete chunk %s: %w", key, err)
		}
	}
	for cp, list := range byChunk {
		val, err := s.encode(list)
		if err != nil {
			return fmt.Errorf("encode chunk %d,%d: %w", cp.X, cp.Z, err)
		}
		if err := wb.Set(chunkKey(cp), val); err != nil {
			return fmt.Errorf("write chunk %d,%d: %w", cp.X, cp.Z, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush world overrides: %w", err)
	}

	s.log.Info("saved world overrides", "chunks", len(byChunk), "removed", len(stale))
	return nil
}

// Close flushes and closes the database.
func (s *BadgerStore) Close() error {
	s.dec.Close()
	if err := s.enc.Close(); err != nil {
		s.log.Warn("close zstd encoder", "error", err)
	}
	return s.db.Close()
}

func (s *BadgerStore) encode(list []BlockOverride) ([]byte, error) {
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return s.enc.EncodeAll(raw, nil), nil
}

func (s *BadgerStore) decode(val []byte) ([]BlockOverride, error) {
	raw, err := s.dec.DecodeAll(val, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	var list []BlockOverride
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return list, nil
}
