// Package migrations embebe el esquema de cada motor soportado, con el mismo nombre de tablas y columnas.
package migrations

import "embed"

//go:embed postgres/*.sql mysql/*.sql sqlite/*.sql
var FS embed.FS
