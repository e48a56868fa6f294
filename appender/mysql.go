package appender

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
)

const mysqlCreateTable = "CREATE TABLE IF NOT EXISTS `%s` (" +
	"id CHAR(36) NOT NULL PRIMARY KEY, " +
	"`timestamp` DATETIME(6) NOT NULL, " +
	"level VARCHAR(20) NOT NULL, " +
	"message TEXT NOT NULL, " +
	"logger VARCHAR(255) NULL, " +
	"metadata JSON NULL)"

const mysqlInsert = "INSERT INTO `%s` (id, `timestamp`, level, message, logger, metadata) VALUES (?, ?, ?, ?, ?, ?)"

// DefaultMySQLPort is used when MySQLConfig.Port is zero.
const DefaultMySQLPort = 3306

// MySQL writes records into a MySQL table
type MySQL struct {
	*sqlAppender
}

// MySQLConfig holds connection parameters for the MySQL appender
type MySQLConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// Table to insert into (default: "logs")
	Table string
	// Timeout bounds connection establishment (default: 5s)
	Timeout time.Duration
	// Filters gate which records are written
	Filters []filter.Filter
}

// DSN renders the driver connection string for cfg
func (cfg MySQLConfig) DSN() string {
	port := cfg.Port
	if port == 0 {
		port = DefaultMySQLPort
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Timeout = timeout
	return mc.FormatDSN()
}

// NewMySQL creates a MySQL appender. No connection is made until the first
// record is appended.
func NewMySQL(cfg MySQLConfig) (*MySQL, error) {
	switch {
	case cfg.Host == "":
		return nil, fmt.Errorf("%w: mysql host is required", core.ErrConfiguration)
	case cfg.User == "":
		return nil, fmt.Errorf("%w: mysql user is required", core.ErrConfiguration)
	case cfg.Database == "":
		return nil, fmt.Errorf("%w: mysql database is required", core.ErrConfiguration)
	}
	table, err := validateTable(cfg.Table)
	if err != nil {
		return nil, err
	}

	d := dialect{
		driver:      "mysql",
		createTable: mysqlCreateTable,
		insert:      mysqlInsert,
		tune: func(db *sql.DB) {
			db.SetMaxOpenConns(4)
			db.SetConnMaxIdleTime(5 * time.Minute)
		},
	}

	name := fmt.Sprintf("mysql:%s/%s", cfg.Host, cfg.Database)
	return &MySQL{
		sqlAppender: newSQLAppender(name, d, cfg.DSN(), table, NewBase(nil, cfg.Filters...)),
	}, nil
}
