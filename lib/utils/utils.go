// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"os"
	"os/user"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ChainSafe/chaindb"
)

// DefaultDatabaseDir directory inside basepath where database contents are stored
const DefaultDatabaseDir = "db"

// SetupDatabase will return an instance of database based on basepath
func SetupDatabase(basepath string, inMemory bool) (chaindb.Database, error) {
	return chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  filepath.Join(basepath, DefaultDatabaseDir),
		InMemory: inMemory,
	})
}

// DatabaseExists returns true if a database directory exists within basepath.
func DatabaseExists(basepath string) bool {
	return PathExists(filepath.Join(basepath, DefaultDatabaseDir))
}

// ClearDatabase removes the database directory within basepath.
func ClearDatabase(basepath string) error {
	return os.RemoveAll(filepath.Join(basepath, DefaultDatabaseDir))
}

// PathExists returns true if the named file or directory exists, otherwise false
func PathExists(p string) bool {
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// HomeDir returns the user's current HOME directory
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// ExpandDir expands a tilde prefix path to a full home path
func ExpandDir(targetPath string) string {
	if strings.HasPrefix(targetPath, "~\\") || strings.HasPrefix(targetPath, "~/") {
		if homeDir := HomeDir(); homeDir != "" {
			targetPath = homeDir + targetPath[1:]
		}
	} else if strings.HasPrefix(targetPath, ".\\") || strings.HasPrefix(targetPath, "./") {
		targetPath, _ = filepath.Abs(targetPath)
	}
	return path.Clean(os.ExpandEnv(targetPath))
}

// BasePath returns the data directory of the named bridge within the
// user's HOME directory, or the name itself if HOME cannot be located.
func BasePath(name string) string {
	home := HomeDir()
	if home == "" {
		return name
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "AuraBridge", name)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "AuraBridge", name)
	default:
		return filepath.Join(home, ".aurabridge", name)
	}
}
