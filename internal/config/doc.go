// Package config handles loading the bookshelf configuration file.
//
// The file lives at ~/.config/bookshelf/config.toml and is optional; a
// missing file yields the defaults (local API server, log directory under
// ~/.local/state/bookshelf). Recognized fields:
//
//	api_url = "http://localhost:3001/api"
//	log_dir = "~/.local/state/bookshelf"
//
// Tilde expansion is applied to paths. Blank fields fall back to their
// defaults, so a partially filled file is fine.
package config
