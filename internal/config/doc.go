// Package config loads and saves the mtkit YAML configuration file.
//
// A configuration file is optional; every setting has a default (see
// DefaultConfig) and values present in the file override only the fields
// they name.
//
//	store:
//	  root: /srv/media/store
//	  extensions: mp3, flac, jpg
//	log:
//	  level: info
//	  format: console
//	  filename: /var/log/mtkit.log
//	id:
//	  seed: 0
package config
