package model

import "time"

// DonationLink is one way of donating to a project.
type DonationLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ModeratorMessage is a note a moderator has left on a project.
type ModeratorMessage struct {
	Message string  `json:"message"`
	Body    *string `json:"body"`
}

// License identifies the license a project is published under.
type License struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// GalleryItem is one image in a project's gallery.
type GalleryItem struct {
	URL         string    `json:"url"`
	Featured    bool      `json:"featured"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Created     time.Time `json:"created"`
	Ordering    int       `json:"ordering"`
}

// Project is a published content project with all of its metadata.
type Project struct {
	Slug                 string                  `json:"slug"`
	Title                string                  `json:"title"`
	Description          string                  `json:"description"`
	Categories           []string                `json:"categories"`
	ClientSide           Support                 `json:"client_side"`
	ServerSide           Support                 `json:"server_side"`
	Body                 string                  `json:"body"`
	Status               ProjectStatus           `json:"status"`
	RequestedStatus      *RequestedProjectStatus `json:"requested_status"`
	AdditionalCategories []string                `json:"additional_categories"`
	IssuesURL            *string                 `json:"issues_url"`
	SourceURL            *string                 `json:"source_url"`
	WikiURL              *string                 `json:"wiki_url"`
	DiscordURL           *string                 `json:"discord_url"`
	DonationURLs         []DonationLink          `json:"donation_urls"`
	ProjectType          ProjectType             `json:"project_type"`
	Downloads            int                     `json:"downloads"`
	IconURL              *string                 `json:"icon_url"`
	Color                *Color                  `json:"color"`
	ThreadID             string                  `json:"thread_id"`
	MonetizationStatus   MonetizationStatus      `json:"monetization_status"`
	ID                   string                  `json:"id"`
	Team                 string                  `json:"team"`
	BodyURL              *string                 `json:"body_url"`
	ModeratorMessage     *ModeratorMessage       `json:"moderator_message"`
	Published            time.Time               `json:"published"`
	Updated              time.Time               `json:"updated"`
	Approved             *time.Time              `json:"approved"`
	Queued               *time.Time              `json:"queued"`
	Followers            int                     `json:"followers"`
	License              License                 `json:"license"`
	Versions             []string                `json:"versions"`
	GameVersions         []string                `json:"game_versions"`
	Loaders              []string                `json:"loaders"`
	Gallery              []GalleryItem           `json:"gallery"`
}

// ProjectDependencies lists every project and version a project depends on.
type ProjectDependencies struct {
	Projects []Project `json:"projects"`
	Versions []Version `json:"versions"`
}

// SearchResults is one page of project search hits.
type SearchResults struct {
	Hits      []Project `json:"hits"`
	Offset    int       `json:"offset"`
	Limit     int       `json:"limit"`
	TotalHits int       `json:"total_hits"`
}
