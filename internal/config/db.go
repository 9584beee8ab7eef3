package config

const (
	// GormEngineSQLite stores change sets in a local sqlite file named DB.Name.
	GormEngineSQLite = "sqlite"

	// GormEngineMySQL stores change sets in a mysql database.
	GormEngineMySQL = "mysql"

	// GormEnginePostgres stores change sets in a postgres database.
	GormEnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string
}
