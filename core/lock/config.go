package lock

// Config holds configuration for the Redis instance used to serialize BOM runs.
type Config struct {
	// Address is host:port of the Redis server. Empty keeps locks in-process.
	Address string `mapstructure:"address" default:""`
	// Password authenticates against Redis.
	Password string `mapstructure:"password" default:""`
	// DB selects the Redis logical database.
	DB int `mapstructure:"db" default:"0"`
	// LockTTLSeconds caps how long a crashed holder can block a team.
	LockTTLSeconds int `mapstructure:"lock_ttl_seconds" default:"30"`
}
