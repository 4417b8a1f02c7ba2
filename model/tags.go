package model

import "time"

// Category is one entry of the platform's category catalog. Icon holds raw
// SVG markup.
type Category struct {
	Icon        string      `json:"icon"`
	Name        string      `json:"name"`
	ProjectType ProjectType `json:"project_type"`
	Header      string      `json:"header"`
}

// Loader is one entry of the loader catalog. Icon holds raw SVG markup.
type Loader struct {
	Icon        string      `json:"icon"`
	Name        string      `json:"name"`
	ProjectType ProjectType `json:"project_type"`
	Header      string      `json:"header"`
}

// GameVersion is one entry of the game version catalog.
type GameVersion struct {
	Version     string    `json:"version"`
	VersionType string    `json:"version_type"`
	Date        time.Time `json:"date"`
	Major       bool      `json:"major"`
}

// DeprecatedLicense is a catalog license entry from the deprecated license
// list endpoint.
type DeprecatedLicense struct {
	Short string `json:"short"`
	Name  string `json:"name"`
}

// LicenseText is the full text of a license, fetched by SPDX id.
type LicenseText struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DonationPlatform is one entry of the donation platform catalog.
type DonationPlatform struct {
	Short string `json:"short"`
	Name  string `json:"name"`
}

// ForgeUpdates is the update manifest served for Forge's version checker.
// Promos maps "{game_version}-recommended" and "{game_version}-latest" keys
// to version numbers.
type ForgeUpdates struct {
	Homepage string            `json:"homepage"`
	Promos   map[string]string `json:"promos"`
}

// Statistics are the platform-wide counts the instance publishes about
// itself.
type Statistics struct {
	Projects int `json:"projects"`
	Versions int `json:"versions"`
	Files    int `json:"files"`
	Authors  int `json:"authors"`
}
