// Package filesystem contains the implementation of the Filesystem struct.
package filesystem

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/prefkit/prefsync/internal/config"
)

type PathType string

const (
	configYamlFileName = "config.yaml"
	prefsDBFileName    = "preferences.db"

	AppDirectory    PathType = "app"
	CacheDirectory  PathType = "cache"
	ConfigDirectory PathType = "config"
	ConfigFilePath  PathType = "config_file"
	LogsDirectory   PathType = "logs"
	LogsFilePath    PathType = "log_file"
	DataDirectory   PathType = "data"
	PrefsDB         PathType = "prefs_db"
)

// Filesystem is a struct that contains the methods to interact with local storage.
type Filesystem struct {
	logger *logrus.Logger
	appCfg *config.AppConfig
}

// NewAppFilesystem creates a new Filesystem instance.
func NewAppFilesystem(appCfg *config.AppConfig) *Filesystem {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	return &Filesystem{
		logger: log,
		appCfg: appCfg,
	}
}

// EnsureAllPaths creates the application directory tree and returns the
// resolved paths, including the preferences database file under data/.
func (s *Filesystem) EnsureAllPaths() (map[PathType]string, error) {
	paths := map[PathType]string{}

	appDirectory, err := s.ensureAppDirectory()
	if err != nil {
		return paths, err
	}
	paths[AppDirectory] = appDirectory

	for _, dir := range []struct {
		pathType PathType
		name     string
	}{
		{CacheDirectory, "cache"},
		{ConfigDirectory, "config"},
		{LogsDirectory, "logs"},
		{DataDirectory, "data"},
	} {
		fullPath := filepath.Join(appDirectory, dir.name)
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			s.logger.WithField("path", fullPath).Debug("creating application directory")
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				return paths, err
			}
		}
		paths[dir.pathType] = fullPath
	}

	// preferences database file under data directory
	prefsDBFilePath, err := s.CreateSQLiteDBFile(paths[DataDirectory], prefsDBFileName)
	if err != nil {
		return paths, err
	}
	paths[PrefsDB] = prefsDBFilePath

	// create empty config file under config directory
	configFilePath := filepath.Join(paths[ConfigDirectory], configYamlFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if _, err := os.Create(configFilePath); err != nil {
			return paths, err
		}
	}
	paths[ConfigFilePath] = configFilePath

	// create one empty log file under logs directory
	logFilePath := filepath.Join(paths[LogsDirectory], fmt.Sprintf("%s.log", strings.ToLower(s.appCfg.Name)))
	if _, err := os.Stat(logFilePath); os.IsNotExist(err) {
		if _, err := os.Create(logFilePath); err != nil {
			return paths, err
		}
	}
	paths[LogsFilePath] = logFilePath

	return paths, nil
}

func (s *Filesystem) ensureAppDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(homeDir, fmt.Sprintf(".%s", strings.ToLower(s.appCfg.Name)))

	if _, err := os.Stat(appDir); os.IsNotExist(err) {
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return "", err
		}
	}

	return appDir, nil
}

// CreateSQLiteDBFile creates an empty, valid SQLite database file if one
// does not already exist at the location.
func (s *Filesystem) CreateSQLiteDBFile(dataDirectory, fileName string) (string, error) {
	dbFilePath := filepath.Join(dataDirectory, fileName)
	if _, err := os.Stat(dbFilePath); err == nil {
		return dbFilePath, nil
	}

	s.logger.WithField("path", dbFilePath).Debug("initializing sqlite database file")

	file, err := os.Create(dbFilePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	sqliteDB, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return "", err
	}
	defer sqliteDB.Close()

	// Ping so an unusable file surfaces here rather than at first import.
	if err := sqliteDB.Ping(); err != nil {
		return "", err
	}

	return dbFilePath, nil
}
