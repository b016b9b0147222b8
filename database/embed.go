// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
//
// embed paketi derleme zamanında dosyaları binary'nin içine gömer;
// deploy edilen binary'nin yanında migration dosyası taşımak gerekmez.
package database

import (
	"embed"
	"io/fs"
)

// EmbeddedMigrations, migrations/ dizinindeki SQL dosyalarını içerir.
//
//go:embed migrations/*.sql
var EmbeddedMigrations embed.FS

// Migrations, gömülü migration dosyalarını kök dizinde sunan fs.FS döner.
// New() migration dosyalarını FS kökünde arar.
func Migrations() fs.FS {
	sub, err := fs.Sub(EmbeddedMigrations, "migrations")
	if err != nil {
		// embed derleme zamanında garantili — buraya düşmek programlama hatasıdır.
		panic(err)
	}
	return sub
}
