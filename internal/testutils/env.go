package testutils

import (
	"os"

	"karondoran-server/internal/config"
)

// EnvPrefix is prepended to config keys when they are read from the environment.
const EnvPrefix = "KARONDORAN_"

// SavedEnv is the state of an environment variable before a test changed it.
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetConfigEnv sets the variable for a config key such as "SERVER_MODE" and
// returns what it held before.
func SetConfigEnv(name, value string) SavedEnv {
	key := EnvPrefix + name
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// RestoreEnv puts the saved variables back, unsetting those that were absent.
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}

// InitTestConfig loads the config from an empty temp directory in debug mode
// with jwtSecret and the given overrides applied. The returned func restores
// the environment and removes the directory; call it after m.Run.
func InitTestConfig(pkg, jwtSecret string, overrides map[string]string) (func(), error) {
	tmpDir, err := os.MkdirTemp("", "karondoran-"+pkg+"-config-*")
	if err != nil {
		return nil, err
	}

	envs := []SavedEnv{
		SetConfigEnv("SERVER_MODE", "debug"),
		SetConfigEnv("JWT_SECRET", jwtSecret),
	}
	for name, value := range overrides {
		envs = append(envs, SetConfigEnv(name, value))
	}
	config.InitConfig(tmpDir)

	return func() {
		RestoreEnv(envs)
		_ = os.RemoveAll(tmpDir)
	}, nil
}
