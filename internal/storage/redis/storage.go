package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// The user document is stored as JSON; the want-to-go list lives in its own
// Redis LIST key so that adds never rewrite the whole document.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// addIfAbsent appends ARGV[1] to the list at KEYS[2] only when the user
// document at KEYS[1] exists and the value is not already in the list.
// Running it as a script makes the membership check and the append a single
// atomic step, so concurrent adds for one user cannot lose an update.
var addIfAbsent = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
local list = redis.call('LRANGE', KEYS[2], 0, -1)
for _, v in ipairs(list) do
  if v == ARGV[1] then
    return 0
  end
end
redis.call('RPUSH', KEYS[2], ARGV[1])
return 1
`)

// storedUser is the JSON document shape for a user. The list is persisted
// separately; it is carried here only so SaveUser can seed it.
type storedUser struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(storedUser{
		Username:  user.Username,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return err
	}

	// Use pipeline for atomic doc + list write
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.Username), data, 0)
	pipe.Del(ctx, wantListKey(user.Username))
	if len(user.WantToGoList) > 0 {
		codes := make([]any, len(user.WantToGoList))
		for i, c := range user.WantToGoList {
			codes[i] = string(c)
		}
		pipe.RPush(ctx, wantListKey(user.Username), codes...)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	pipe := s.client.Pipeline()
	getDoc := pipe.Get(ctx, userKey(username))
	getList := pipe.LRange(ctx, wantListKey(username), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	data, err := getDoc.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var doc storedUser
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	codes, err := getList.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	user := &model.User{
		Username:     doc.Username,
		Password:     doc.Password,
		CreatedAt:    doc.CreatedAt,
		WantToGoList: make([]model.DestinationCode, 0, len(codes)),
	}
	for _, c := range codes {
		user.WantToGoList = append(user.WantToGoList, model.DestinationCode(c))
	}
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	return s.client.Del(ctx, userKey(username), wantListKey(username)).Err()
}

// Want-to-go list operations

func (s *Storage) AddWantToGo(ctx context.Context, username string, code model.DestinationCode) error {
	keys := []string{userKey(username), wantListKey(username)}
	res, err := addIfAbsent.Run(ctx, s.client, keys, string(code)).Int()
	if err != nil {
		return err
	}

	switch res {
	case -1:
		return model.ErrUserNotFound
	case 0:
		return model.ErrAlreadyWanted
	default:
		return nil
	}
}

func (s *Storage) GetWantToGoList(ctx context.Context, username string) ([]model.DestinationCode, error) {
	pipe := s.client.Pipeline()
	exists := pipe.Exists(ctx, userKey(username))
	getList := pipe.LRange(ctx, wantListKey(username), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	if exists.Val() == 0 {
		return nil, model.ErrUserNotFound
	}

	codes, err := getList.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	out := make([]model.DestinationCode, 0, len(codes))
	for _, c := range codes {
		out = append(out, model.DestinationCode(c))
	}
	return out, nil
}
