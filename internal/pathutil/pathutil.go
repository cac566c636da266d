// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an isolated set of files when set, e.g. SCULPT_ENV=dev.
const EnvVar = "SCULPT_ENV"

const appDir = "sculpt"

// Paths holds all application path configurations.
type Paths struct {
	configFileName  string
	dbFileName      string
	sqliteFileName  string
	libraryFileName string
	logFileName     string

	// Computed absolute paths
	configFilePath  string
	dbFilePath      string
	sqliteFilePath  string
	libraryFilePath string
	logFilePath     string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths, initErr = New(os.Getenv(EnvVar))
	})

	return initErr
}

// New computes the application paths for the named environment. An empty
// env yields the default file names.
func New(env string) (*Paths, error) {
	p := &Paths{
		configFileName:  "config.yml",
		dbFileName:      "sculpt.db",
		sqliteFileName:  "sculpt.sqlite",
		libraryFileName: "library.yml",
		logFileName:     "sculpt.log",
	}

	p.applyEnvironmentOverrides(env)

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func SQLiteFilePath() string {
	return Must().sqliteFilePath
}

func LibraryFilePath() string {
	return Must().libraryFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// ConfigFile returns the path to the config file.
func (p *Paths) ConfigFile() string {
	return p.configFilePath
}

// DBFile returns the path to the BoltDB database.
func (p *Paths) DBFile() string {
	return p.dbFilePath
}

// SQLiteFile returns the path to the SQLite database.
func (p *Paths) SQLiteFile() string {
	return p.sqliteFilePath
}

// LibraryFile returns the path to the user's exercise catalog.
func (p *Paths) LibraryFile() string {
	return p.libraryFilePath
}

// LogFile returns the path to the log file.
func (p *Paths) LogFile() string {
	return p.logFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("sculpt_%s.db", env)
	p.sqliteFileName = fmt.Sprintf("sculpt_%s.sqlite", env)
	p.libraryFileName = fmt.Sprintf("library_%s.yml", env)
	p.logFileName = fmt.Sprintf("sculpt_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(appDir, p.configFileName))
	if err != nil {
		return err
	}

	p.libraryFilePath = filepath.Join(
		filepath.Dir(p.configFilePath),
		p.libraryFileName,
	)

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
