package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vercel/cli/internal/filemu"
)

// SetAccessToken sets the value of the access token at the configuration file
// found at path.
func SetAccessToken(path, token string) error {
	return set(path, AccessTokenFileKey, token)
}

// SetTeam sets the value of the team slug at the configuration file found at
// path.
func SetTeam(path, slug string) error {
	return set(path, TeamFileKey, slug)
}

// Clear clears the access token and team at the configuration file found at
// path.
func Clear(path string) (err error) {
	var m map[string]interface{}
	switch err = unmarshal(path, &m); {
	case err == nil, os.IsNotExist(err):
		break
	default:
		return
	}

	delete(m, AccessTokenFileKey)
	delete(m, TeamFileKey)

	return marshal(path, m)
}

func set(path, key string, value interface{}) error {
	m := map[string]interface{}{}

	switch err := unmarshal(path, &m); {
	case err == nil, os.IsNotExist(err):
		break
	default:
		return err
	}

	m[key] = value

	return marshal(path, m)
}

func lockPath() string {
	return filepath.Join(os.TempDir(), "vercel.config.lock")
}

func unmarshal(path string, v interface{}) (err error) {
	var unlock filemu.Unlocker
	if unlock, err = filemu.RLock(context.Background(), lockPath()); err != nil {
		return
	}
	defer func() {
		if e := unlock.Unlock(); err == nil {
			err = e
		}
	}()

	err = unmarshalUnlocked(path, v)

	return
}

func unmarshalUnlocked(path string, v interface{}) (err error) {
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()

	err = yaml.NewDecoder(f).Decode(v)

	return
}

func marshal(path string, v interface{}) (err error) {
	var unlock filemu.Unlocker
	if unlock, err = filemu.Lock(context.Background(), lockPath()); err != nil {
		return
	}
	defer func() {
		if e := unlock.Unlock(); err == nil {
			err = e
		}
	}()

	err = marshalUnlocked(path, v)

	return
}

func marshalUnlocked(path string, v interface{}) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	var b bytes.Buffer
	if err = yaml.NewEncoder(&b).Encode(v); err == nil {
		err = os.WriteFile(path, b.Bytes(), 0600)
	}

	return
}
