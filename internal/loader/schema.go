package loader

import (
	"fmt"
	"strings"
)

// Table is the table every suite query runs against.
const Table = "crash_data"

// createTableSQL uses the common SQL subset understood by PostgreSQL,
// MySQL/MariaDB and SQLite.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS crash_data (
	id BIGINT PRIMARY KEY,
	crash_date DATE,
	crash_time VARCHAR(8),
	borough VARCHAR(50),
	zip_code VARCHAR(10),
	latitude DECIMAL(10, 6),
	longitude DECIMAL(10, 6),
	location VARCHAR(100),
	on_street_name VARCHAR(100),
	cross_street_name VARCHAR(100),
	off_street_name VARCHAR(100),
	persons_injured INTEGER DEFAULT 0,
	persons_killed INTEGER DEFAULT 0,
	pedestrians_injured INTEGER DEFAULT 0,
	pedestrians_killed INTEGER DEFAULT 0,
	cyclists_injured INTEGER DEFAULT 0,
	cyclists_killed INTEGER DEFAULT 0,
	motorists_injured INTEGER DEFAULT 0,
	motorists_killed INTEGER DEFAULT 0,
	contributing_factor_1 VARCHAR(100),
	contributing_factor_2 VARCHAR(100),
	contributing_factor_3 VARCHAR(100),
	contributing_factor_4 VARCHAR(100),
	contributing_factor_5 VARCHAR(100),
	vehicle_type_1 VARCHAR(50),
	vehicle_type_2 VARCHAR(50),
	vehicle_type_3 VARCHAR(50),
	vehicle_type_4 VARCHAR(50),
	vehicle_type_5 VARCHAR(50)
)`

// columns in insert order. Must stay aligned with ParseRecord.
var columns = []string{
	"id", "crash_date", "crash_time", "borough", "zip_code",
	"latitude", "longitude", "location", "on_street_name",
	"cross_street_name", "off_street_name",
	"persons_injured", "persons_killed",
	"pedestrians_injured", "pedestrians_killed",
	"cyclists_injured", "cyclists_killed",
	"motorists_injured", "motorists_killed",
	"contributing_factor_1", "contributing_factor_2",
	"contributing_factor_3", "contributing_factor_4",
	"contributing_factor_5",
	"vehicle_type_1", "vehicle_type_2", "vehicle_type_3",
	"vehicle_type_4", "vehicle_type_5",
}

// insertSQL renders the insert statement with the engine's placeholder
// style ($1… for PostgreSQL, ? for MySQL and SQLite).
func insertSQL(placeholder func(i int) string) string {
	ph := make([]string, len(columns))
	for i := range columns {
		ph[i] = placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		Table, strings.Join(columns, ", "), strings.Join(ph, ", "))
}
